package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a back-office account. Kiosk scans are unauthenticated; users
// exist only for the admin/HR surfaces.
type User struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"column:name;type:varchar(255);not null"`
	Email     string         `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Password  string         `gorm:"column:password;type:varchar(255);not null"`
	Role      string         `gorm:"column:role;type:varchar(50);not null;default:'HR'"`
	Active    bool           `gorm:"column:active;not null;default:true"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
