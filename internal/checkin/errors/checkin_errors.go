package errors

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
)

var (
	ErrUnknownCode = apperror.New(
		apperror.CodeUnknownCode,
		"Code not recognized",
		http.StatusNotFound,
	)

	ErrScanInProgress = apperror.New(
		apperror.CodeScanInProgress,
		"A scan for this badge is already being processed",
		http.StatusConflict,
	)
)
