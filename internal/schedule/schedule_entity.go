package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleType is the attendance policy assigned to an employee: either a
// standard day shift with an expected entry time (and optionally a meal
// window), or a rotating 24-hour shift where entry/exit alternate across a
// nominal 48-hour cycle.
type ScheduleType struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string         `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Is24HourShift    bool           `gorm:"column:is_24h_shift;not null;default:false"`
	ExpectedEntry    *string        `gorm:"column:expected_entry;type:time"`
	ToleranceMinutes int            `gorm:"column:tolerance_minutes;not null;default:15"`
	HasMealBreak     bool           `gorm:"column:has_meal_break;not null;default:false"`
	MealWindowStart  *string        `gorm:"column:meal_window_start;type:time"`
	MealWindowEnd    *string        `gorm:"column:meal_window_end;type:time"`
	Active           bool           `gorm:"column:active;not null;default:true"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (ScheduleType) TableName() string {
	return "schedule_types"
}
