package employee

import (
	"time"

	"go-checkin/internal/schedule"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID              uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName        string         `gorm:"column:full_name;type:varchar(200);not null"`
	Email           string         `gorm:"column:email;type:varchar(255);not null"`
	Code            string         `gorm:"column:code;type:varchar(20);not null;uniqueIndex"`
	DepartmentID    *uuid.UUID     `gorm:"column:department_id;type:uuid;index"`
	ScheduleTypeID  *uuid.UUID     `gorm:"column:schedule_type_id;type:uuid;index"`
	QRToken         uuid.UUID      `gorm:"column:qr_token;type:uuid;not null;uniqueIndex"`
	OvertimeEnabled bool           `gorm:"column:overtime_enabled;not null;default:false"`
	Active          bool           `gorm:"column:active;not null;default:true"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index"`

	ScheduleType *schedule.ScheduleType `gorm:"foreignKey:ScheduleTypeID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}
