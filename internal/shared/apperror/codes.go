package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Kiosk rejections (4xx, no state change)
	CodeUnknownCode       = "UNKNOWN_CODE"
	CodeOutsideMealWindow = "OUTSIDE_MEAL_WINDOW"
	CodeNoMealBreak       = "NO_MEAL_BREAK_CONFIGURED"
	CodeScanInProgress    = "SCAN_IN_PROGRESS"

	// Server errors (5xx)
	CodeInternalError        = "INTERNAL_ERROR"
	CodeServiceUnavailable   = "SERVICE_UNAVAILABLE"
	CodeConfigurationMissing = "CONFIGURATION_MISSING"
)
