package errors

import (
	"fmt"
	"net/http"

	"go-checkin/internal/shared/apperror"
)

var (
	ErrNoMealBreak = apperror.New(
		apperror.CodeNoMealBreak,
		"This schedule does not include a meal break",
		http.StatusUnprocessableEntity,
	)

	ErrConfigurationMissing = apperror.New(
		apperror.CodeConfigurationMissing,
		"No schedule type or system default available to evaluate lateness",
		http.StatusInternalServerError,
	)
)

// NewOutsideMealWindow carries the configured window so the kiosk can show
// the employee when they are allowed to leave.
func NewOutsideMealWindow(windowStart, windowEnd string) *apperror.AppError {
	return apperror.New(
		apperror.CodeOutsideMealWindow,
		fmt.Sprintf("Meal exits are only allowed between %s and %s", windowStart, windowEnd),
		http.StatusUnprocessableEntity,
	)
}
