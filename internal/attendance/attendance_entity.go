package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Movement kinds. Which kind follows which is decided by the sequencer at
// scan time, not by a fixed daily template.
const (
	KindEntry   = "ENTRY"
	KindMealOut = "MEAL_OUT"
	KindMealIn  = "MEAL_IN"
	KindExit    = "EXIT"
)

// Movement is one ledger row: a single scan by one employee. Rows are
// append-only; the lateness fields are computed once when the row is created
// and never revised, so historical reports stay stable.
type Movement struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_movements_employee_date"`
	Date        time.Time `gorm:"column:movement_date;type:date;not null;index:idx_movements_employee_date"`
	TimeOfDay   string    `gorm:"column:movement_time;type:time;not null"`
	Kind        string    `gorm:"column:kind;type:varchar(20);not null"`
	Late        bool      `gorm:"column:late;not null;default:false"`
	LateMinutes int       `gorm:"column:late_minutes;not null;default:0"`
	RecordedAt  time.Time `gorm:"column:recorded_at;type:timestamptz;not null"`
}

func (Movement) TableName() string {
	return "movements"
}
