package errors

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
)

var (
	ErrVisitorNotFound = apperror.New(
		apperror.CodeNotFound,
		"Visitor not found",
		http.StatusNotFound,
	)

	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown department",
		http.StatusUnprocessableEntity,
	)
)
