package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"isbnsplit/pkg/model"
)

const (
	CodeInvalidCharacter = "INVALID_CHARACTER"
	CodeInvalidChecksum  = "INVALID_CHECKSUM"
	CodeInputTooLong     = "INPUT_TOO_LONG"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternal         = "INTERNAL_ERROR"
	CodeTimeout          = "TIMEOUT"
	CodeUnavailable      = "SERVICE_UNAVAILABLE"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) ToJSON() []byte {
	response := ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
	data, _ := json.Marshal(response)
	return data
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func InvalidCharacter(err error) *AppError {
	return &AppError{
		Code:       CodeInvalidCharacter,
		Message:    model.ErrorInvalidCharacter.Message(),
		HTTPStatus: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

func InvalidChecksum(err error) *AppError {
	return &AppError{
		Code:       CodeInvalidChecksum,
		Message:    model.ErrorInvalidChecksum.Message(),
		HTTPStatus: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

// FromKind returns the AppError matching a failed validation kind, or nil
// for model.ErrorNone.
func FromKind(kind model.ErrorKind, err error) *AppError {
	switch kind {
	case model.ErrorNone:
		return nil
	case model.ErrorInvalidChecksum:
		return InvalidChecksum(err)
	default:
		return InvalidCharacter(err)
	}
}

func InputTooLong(maxLength int) *AppError {
	return &AppError{
		Code:       CodeInputTooLong,
		Message:    "Too many characters input.",
		HTTPStatus: http.StatusBadRequest,
		Details: map[string]any{
			"max_length": maxLength,
		},
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func Timeout(message string) *AppError {
	return &AppError{
		Code:       CodeTimeout,
		Message:    message,
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

func Unavailable(service string) *AppError {
	return &AppError{
		Code:       CodeUnavailable,
		Message:    fmt.Sprintf("%s is temporarily unavailable", service),
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
