package visitor

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitorTokenPrefix marks a scanned code as a visitor badge rather than an
// employee one. The prefix travels inside the QR payload only; the stored
// token is the bare UUID.
const VisitorTokenPrefix = "VISITOR:"

type Visitor struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"column:name;type:varchar(150);not null"`
	Email        string         `gorm:"column:email;type:varchar(255);not null"`
	Company      string         `gorm:"column:company;type:varchar(150)"`
	Phone        string         `gorm:"column:phone;type:varchar(30)"`
	DepartmentID *uuid.UUID     `gorm:"column:department_id;type:uuid;index"`
	Reason       string         `gorm:"column:reason;type:varchar(500)"`
	VisitDate    time.Time      `gorm:"column:visit_date;type:date;not null"`
	VisitTime    string         `gorm:"column:visit_time;type:time"`
	QRToken      uuid.UUID      `gorm:"column:qr_token;type:uuid;not null;uniqueIndex"`
	Confirmed    bool           `gorm:"column:confirmed;not null;default:false"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Visitor) TableName() string {
	return "visitors"
}

// VisitSession is one on-premises interval. An open session has no LeftAt;
// a visitor has at most one open session at a time.
type VisitSession struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	VisitorID uuid.UUID  `gorm:"column:visitor_id;type:uuid;not null;index"`
	EnteredAt time.Time  `gorm:"column:entered_at;type:timestamptz;not null"`
	LeftAt    *time.Time `gorm:"column:left_at;type:timestamptz"`
}

func (VisitSession) TableName() string {
	return "visit_sessions"
}
