package errors

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"An employee with this code already exists",
		http.StatusConflict,
	)
)
