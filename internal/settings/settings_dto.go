package settings

type UpdateSettingsRequest struct {
	ExpectedEntry    *string `json:"expected_entry"`
	ToleranceMinutes *int    `json:"tolerance_minutes"`
	ManagerEmail     *string `json:"manager_email" binding:"omitempty,email"`
	ReportArchiveDir *string `json:"report_archive_dir"`
}

type SettingsResponse struct {
	ExpectedEntry    string `json:"expected_entry"`
	ToleranceMinutes int    `json:"tolerance_minutes"`
	ManagerEmail     string `json:"manager_email"`
	ReportArchiveDir string `json:"report_archive_dir,omitempty"`
}
