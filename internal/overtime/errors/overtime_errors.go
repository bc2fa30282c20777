package errors

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
)

var (
	ErrOvertimeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Overtime entry not found",
		http.StatusNotFound,
	)

	ErrOvertimeNotEnabled = apperror.New(
		apperror.CodeInvalidState,
		"Overtime is not enabled for this employee",
		http.StatusUnprocessableEntity,
	)

	ErrAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"Overtime entry is already approved",
		http.StatusConflict,
	)
)
