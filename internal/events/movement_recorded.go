package events

import "time"

const MovementRecordedTopic = "checkin.movement.v1"

type MovementRecordedEvent struct {
	EventType   string    `json:"event_type"`
	MovementID  string    `json:"movement_id"`
	EmployeeID  string    `json:"employee_id"`
	Date        string    `json:"date"`
	Kind        string    `json:"kind"`
	Late        bool      `json:"late"`
	LateMinutes int       `json:"late_minutes"`
	OccurredAt  time.Time `json:"occurred_at"`
}
