package overtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Overtime struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID       `gorm:"column:employee_id;type:uuid;not null;index:idx_overtime_employee_date"`
	Date        time.Time       `gorm:"column:date;type:date;not null;index:idx_overtime_employee_date"`
	Hours       decimal.Decimal `gorm:"column:hours;type:decimal(4,2);not null"`
	Description string          `gorm:"column:description;type:varchar(500)"`
	Approved    bool            `gorm:"column:approved;not null;default:false"`
	ApprovedBy  *string         `gorm:"column:approved_by;type:varchar(100)"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (Overtime) TableName() string {
	return "overtime_entries"
}
