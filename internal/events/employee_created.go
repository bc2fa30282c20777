package events

import "time"

const EmployeeCreatedTopic = "checkin.employee.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Code       string    `json:"code"`
	OccurredAt time.Time `json:"occurred_at"`
}
