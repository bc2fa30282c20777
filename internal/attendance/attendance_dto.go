package attendance

type MovementResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Kind        string `json:"kind"`
	Late        bool   `json:"late"`
	LateMinutes int    `json:"late_minutes"`
}
