package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure beyond its HTTP code, so callers can distinguish
// a locally rejected input from an upstream refusal or an unreachable backend.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindInvalidTransition Kind = "invalid_transition"
	KindConflict          Kind = "conflict"
	KindNetwork           Kind = "network"
	KindAPI               Kind = "api"
	KindTimeout           Kind = "timeout"
	KindParse             Kind = "parse"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidDateParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid date parameter"}
var InvalidDirectionParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid direction parameter"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// InvalidTransition returns a new Failure for a booking-status change that the
// lifecycle table does not allow.
func InvalidTransition(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindInvalidTransition,
		Message: message,
	}
}

// NetworkError returns a new Failure for a request that never produced a usable
// response from the backend.
func NetworkError(err error) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Kind:    KindNetwork,
		Message: err.Error(),
	}
}

// APIError returns a new Failure for a structured refusal from the backend,
// keeping the upstream status code when it carries one.
func APIError(code int, message string) error {
	if code < http.StatusBadRequest {
		code = http.StatusBadGateway
	}

	return &Failure{
		Code:    code,
		Kind:    KindAPI,
		Message: message,
	}
}

// Timeout returns a new Failure for a backend request that exceeded the
// client-side deadline.
func Timeout(message string) error {
	return &Failure{
		Code:    http.StatusGatewayTimeout,
		Kind:    KindTimeout,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, or the empty Kind
// when the error carries none.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}
