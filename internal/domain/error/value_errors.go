package error

import "errors"

// Monthly value domain errors.
var (
	// ErrValueNotFound is returned when no value is recorded for the requested month.
	ErrValueNotFound = errors.New("value not found")

	// ErrInvalidMonth is returned when a month is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when a year is outside the accepted range.
	ErrInvalidYear = errors.New("year out of range")
)

// ValueErrorCode defines error codes for monthly value errors.
type ValueErrorCode string

const (
	ErrCodeValueNotFound      ValueErrorCode = "VAL-010001"
	ErrCodeInvalidMonth       ValueErrorCode = "VAL-020001"
	ErrCodeInvalidYear        ValueErrorCode = "VAL-020002"
	ErrCodeMissingValueFields ValueErrorCode = "VAL-020003"
)

// ValueError represents a monthly value error with code and message.
type ValueError struct {
	Code    ValueErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValueError) Unwrap() error {
	return e.Err
}

// NewValueError creates a new ValueError with the given code and message.
func NewValueError(code ValueErrorCode, message string, err error) *ValueError {
	return &ValueError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
