package report

type RepeatLateItem struct {
	Name             string `json:"name"`
	Code             string `json:"code"`
	LateCount        int    `json:"late_count"`
	TotalLateMinutes int    `json:"total_late_minutes"`
}

type VisitItem struct {
	VisitorName string  `json:"visitor_name"`
	Company     string  `json:"company,omitempty"`
	EnteredAt   string  `json:"entered_at"`
	LeftAt      *string `json:"left_at,omitempty"`
}

type DashboardResponse struct {
	Date             string           `json:"date"`
	Present          int              `json:"present"`
	Late             int              `json:"late"`
	TotalLateMinutes int              `json:"total_late_minutes"`
	Source           string           `json:"source"` // cache or ledger
	RepeatLate       []RepeatLateItem `json:"repeat_late"`
	Visits           []VisitItem      `json:"visits"`
}
