package checkin

import (
	"go-checkin/internal/attendance"
	"go-checkin/internal/visitor"
)

type ScanRequest struct {
	Code string `json:"code" binding:"required"`
}

// ScanResponse carries exactly one of Movement or Visit, depending on which
// kind of badge was scanned.
type ScanResponse struct {
	Type     string                       `json:"type"` // EMPLOYEE or VISITOR
	Movement *attendance.MovementResponse `json:"movement,omitempty"`
	Visit    *visitor.ToggleResponse      `json:"visit,omitempty"`
}
