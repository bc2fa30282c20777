package overtime

type CreateOvertimeRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	Date        string `json:"date" binding:"required"`
	Hours       string `json:"hours" binding:"required"`
	Description string `json:"description"`
}

type OvertimeResponse struct {
	ID          string  `json:"id"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Hours       string  `json:"hours"`
	Description string  `json:"description,omitempty"`
	Approved    bool    `json:"approved"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
}
