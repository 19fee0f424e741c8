// Package error defines domain-specific errors for the KPI dashboard.
package error

import "errors"

// Objective domain errors.
var (
	// ErrObjectiveNotFound is returned when an objective is not found in the system.
	ErrObjectiveNotFound = errors.New("objective not found")

	// ErrInvalidDepartment is returned when a department is not one of the known departments.
	ErrInvalidDepartment = errors.New("invalid department")

	// ErrInvalidObjectiveType is returned when the objective type is unknown.
	ErrInvalidObjectiveType = errors.New("invalid objective type")

	// ErrInvalidNumberFormat is returned when the number format is unknown.
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// ErrInvalidDateRange is returned when an objective ends before it starts.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	// ErrNoFieldsToUpdate is returned when a partial update carries no fields.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrEmptyObjectiveIDs is returned when a bulk operation receives no IDs.
	ErrEmptyObjectiveIDs = errors.New("ids must be a non-empty array")

	// ErrInvalidPeriod is returned when a period selection is out of range.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrReorderMismatch is returned when a reorder request names objectives outside the department.
	ErrReorderMismatch = errors.New("objectives do not belong to department")
)

// ObjectiveErrorCode defines error codes for objective errors.
// Format: OBJ-XXYYYY where XX is category and YYYY is specific error.
type ObjectiveErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeObjectiveNotFound ObjectiveErrorCode = "OBJ-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidDepartment     ObjectiveErrorCode = "OBJ-020001"
	ErrCodeInvalidObjectiveType  ObjectiveErrorCode = "OBJ-020002"
	ErrCodeInvalidNumberFormat   ObjectiveErrorCode = "OBJ-020003"
	ErrCodeInvalidDateRange      ObjectiveErrorCode = "OBJ-020004"
	ErrCodeMissingObjectiveField ObjectiveErrorCode = "OBJ-020005"
	ErrCodeNoFieldsToUpdate      ObjectiveErrorCode = "OBJ-020006"
	ErrCodeEmptyObjectiveIDs     ObjectiveErrorCode = "OBJ-020007"
	ErrCodeInvalidPeriod         ObjectiveErrorCode = "OBJ-020008"
	ErrCodeReorderMismatch       ObjectiveErrorCode = "OBJ-020009"

	// Calculation errors (03XXXX)
	ErrCodeInvalidConfiguration ObjectiveErrorCode = "OBJ-030001"
)

// ObjectiveError represents an objective error with code and message.
type ObjectiveError struct {
	Code    ObjectiveErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ObjectiveError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ObjectiveError) Unwrap() error {
	return e.Err
}

// NewObjectiveError creates a new ObjectiveError with the given code and message.
func NewObjectiveError(code ObjectiveErrorCode, message string, err error) *ObjectiveError {
	return &ObjectiveError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
