package schedule

type CreateScheduleTypeRequest struct {
	Name             string  `json:"name" binding:"required"`
	Is24HourShift    bool    `json:"is_24h_shift"`
	ExpectedEntry    *string `json:"expected_entry"`
	ToleranceMinutes int     `json:"tolerance_minutes"`
	HasMealBreak     bool    `json:"has_meal_break"`
	MealWindowStart  *string `json:"meal_window_start"`
	MealWindowEnd    *string `json:"meal_window_end"`
}

type UpdateScheduleTypeRequest struct {
	Name             *string `json:"name"`
	Is24HourShift    *bool   `json:"is_24h_shift"`
	ExpectedEntry    *string `json:"expected_entry"`
	ToleranceMinutes *int    `json:"tolerance_minutes"`
	HasMealBreak     *bool   `json:"has_meal_break"`
	MealWindowStart  *string `json:"meal_window_start"`
	MealWindowEnd    *string `json:"meal_window_end"`
	Active           *bool   `json:"active"`
}

type ScheduleTypeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Is24HourShift    bool    `json:"is_24h_shift"`
	ExpectedEntry    *string `json:"expected_entry,omitempty"`
	ToleranceMinutes int     `json:"tolerance_minutes"`
	HasMealBreak     bool    `json:"has_meal_break"`
	MealWindowStart  *string `json:"meal_window_start,omitempty"`
	MealWindowEnd    *string `json:"meal_window_end,omitempty"`
	Active           bool    `json:"active"`
}
