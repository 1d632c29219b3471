// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrUnprocessable  = errors.New("unprocessable data")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the single internal representation a failure is normalized
// into before it crosses the HTTP boundary.
type AppError struct {
	Status  int
	Message string
	Details []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func NewAppError(status int, message string, details ...FieldError) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Details: details,
	}
}

func ValidationError(details []FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Details: details,
		Err:     ErrInvalidInput,
	}
}

func DuplicateEmailError() *AppError {
	return &AppError{
		Status:  http.StatusConflict,
		Message: "Email already registered",
		Err:     ErrDuplicateEmail,
	}
}

func UnauthorizedError(message string) *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Message: message,
		Err:     ErrUnauthorized,
	}
}

func ForbiddenError(message string) *AppError {
	return &AppError{
		Status:  http.StatusForbidden,
		Message: message,
		Err:     ErrForbidden,
	}
}

func NotFoundError(message string) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Message: message,
		Err:     ErrNotFound,
	}
}

var genericMessages = map[int]string{
	http.StatusBadRequest:          "Invalid request. Please check your input.",
	http.StatusUnauthorized:        "Authentication failed. Please login again.",
	http.StatusForbidden:           "You do not have permission to perform this action.",
	http.StatusNotFound:            "The requested resource was not found.",
	http.StatusConflict:            "Email already registered",
	http.StatusUnprocessableEntity: "Invalid data provided. Please check your input.",
	http.StatusTooManyRequests:     "Too many requests. Please try again later.",
	http.StatusInternalServerError: "Server error. Please try again later.",
}

// Normalize maps any internal failure to an AppError with a stable status
// code and an outward-safe message. A specific message set on an AppError
// wins over the generic one for its status, except for 500 responses, which
// never expose internal error text.
func Normalize(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		normalized := *appErr
		if normalized.Status == 0 {
			normalized.Status = http.StatusInternalServerError
		}
		if normalized.Status == http.StatusInternalServerError {
			normalized.Message = genericMessages[http.StatusInternalServerError]
		} else if normalized.Message == "" {
			normalized.Message = genericMessages[normalized.Status]
		}
		return &normalized
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid):
		status = http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail):
		status = http.StatusConflict
	case errors.Is(err, ErrUnprocessable):
		status = http.StatusUnprocessableEntity
	}

	return &AppError{
		Status:  status,
		Message: genericMessages[status],
		Err:     err,
	}
}

func GenericMessage(status int) string {
	if msg, ok := genericMessages[status]; ok {
		return msg
	}
	return genericMessages[http.StatusInternalServerError]
}
