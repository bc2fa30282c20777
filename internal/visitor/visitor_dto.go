package visitor

type RegisterVisitorRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Company      string  `json:"company"`
	Phone        string  `json:"phone"`
	DepartmentID *string `json:"department_id"`
	Reason       string  `json:"reason" binding:"required"`
	VisitDate    string  `json:"visit_date" binding:"required"`
	VisitTime    string  `json:"visit_time"`
}

type VisitorResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Company      string  `json:"company,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Reason       string  `json:"reason"`
	VisitDate    string  `json:"visit_date"`
	VisitTime    string  `json:"visit_time,omitempty"`
	Confirmed    bool    `json:"confirmed"`
}

// ToggleResponse tells the kiosk what a visitor scan did.
type ToggleResponse struct {
	VisitorID string  `json:"visitor_id"`
	Name      string  `json:"name"`
	Action    string  `json:"action"` // ENTERED or LEFT
	EnteredAt string  `json:"entered_at"`
	LeftAt    *string `json:"left_at,omitempty"`
}
