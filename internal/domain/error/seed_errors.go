package error

import "errors"

// Seed domain errors.
var (
	// ErrUnknownScenario is returned when no fixture scenario has the requested name.
	ErrUnknownScenario = errors.New("unknown seed scenario")

	// ErrInvalidFixture is returned when an embedded fixture cannot be resolved.
	ErrInvalidFixture = errors.New("invalid seed fixture")
)

// SeedErrorCode defines error codes for seed errors.
type SeedErrorCode string

const (
	ErrCodeUnknownScenario SeedErrorCode = "SEED-010001"
	ErrCodeInvalidFixture  SeedErrorCode = "SEED-020001"
)

// SeedError represents a seed error with code and message.
type SeedError struct {
	Code    SeedErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SeedError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SeedError) Unwrap() error {
	return e.Err
}

// NewSeedError creates a new SeedError with the given code and message.
func NewSeedError(code SeedErrorCode, message string, err error) *SeedError {
	return &SeedError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
