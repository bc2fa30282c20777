package settings

import "time"

// SystemSettings is the singleton fallback used when an employee has no
// schedule type assigned, plus the operational knobs for report delivery.
type SystemSettings struct {
	ID               int       `gorm:"column:id;primaryKey;default:1"`
	ExpectedEntry    string    `gorm:"column:expected_entry;type:time;not null;default:'09:00:00'"`
	ToleranceMinutes int       `gorm:"column:tolerance_minutes;not null;default:15"`
	ManagerEmail     string    `gorm:"column:manager_email;type:varchar(255);not null"`
	ReportArchiveDir string    `gorm:"column:report_archive_dir;type:varchar(500)"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (SystemSettings) TableName() string {
	return "system_settings"
}
