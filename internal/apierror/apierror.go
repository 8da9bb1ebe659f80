package apierror

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrConflict       ErrorCode = "CONFLICT"
	ErrBadRequest     ErrorCode = "BAD_REQUEST"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrInternalServer ErrorCode = "INTERNAL_SERVER_ERROR"
)

// APIError classifies infrastructure failures at the storage boundary.
// Data-quality problems never become APIErrors; they are absorbed as null
// values or alerts inside the pipeline.
type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	logrus.Error(details)
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// MapErrorToExitStatus translates an error into the process exit status used
// by the CLI: 2 for bad input, 1 for everything else.
func MapErrorToExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if apiErr, ok := err.(APIError); ok {
		switch apiErr.Code {
		case ErrBadRequest, ErrInvalidInput:
			return 2
		}
	}
	return 1
}
