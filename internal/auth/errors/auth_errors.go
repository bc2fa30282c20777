package errors

import (
	"net/http"

	"go-checkin/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token is invalid",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists",
		http.StatusConflict,
	)
)
