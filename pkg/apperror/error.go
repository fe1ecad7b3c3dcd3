package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure independently of the transport that produced it.
type Kind string

const (
	KindNetwork           Kind = "network_failure"
	KindUnauthorized      Kind = "unauthorized"
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_transition"
	KindValidation        Kind = "validation_failure"
	KindInvalidTarget     Kind = "invalid_target"
	KindInternal          Kind = "internal"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func Validation(message string, err error) *AppError {
	return New(http.StatusUnprocessableEntity, KindValidation, message, err)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, KindUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

func InvalidTransition(message string) *AppError {
	return New(http.StatusConflict, KindInvalidTransition, message, nil)
}

func InvalidTarget(message string) *AppError {
	return New(http.StatusBadRequest, KindInvalidTarget, message, nil)
}

// Network wraps a failure to reach or read from the backend.
func Network(err error) *AppError {
	return New(http.StatusBadGateway, KindNetwork, "Backend request failed", err)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, KindInternal, "Internal Server Error", err)
}

// KindOf returns the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
