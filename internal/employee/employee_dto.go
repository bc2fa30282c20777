package employee

type CreateEmployeeRequest struct {
	FullName        string  `json:"full_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Code            string  `json:"code" binding:"required"`
	DepartmentID    *string `json:"department_id"`
	ScheduleTypeID  *string `json:"schedule_type_id"`
	OvertimeEnabled bool    `json:"overtime_enabled"`
}

type UpdateEmployeeRequest struct {
	FullName        *string `json:"full_name"`
	Email           *string `json:"email" binding:"omitempty,email"`
	DepartmentID    *string `json:"department_id"`
	ScheduleTypeID  *string `json:"schedule_type_id"`
	OvertimeEnabled *bool   `json:"overtime_enabled"`
	Active          *bool   `json:"active"`
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Code            string  `json:"code"`
	DepartmentID    *string `json:"department_id,omitempty"`
	ScheduleTypeID  *string `json:"schedule_type_id,omitempty"`
	QRToken         string  `json:"qr_token"`
	OvertimeEnabled bool    `json:"overtime_enabled"`
	Active          bool    `json:"active"`
}
