package error

import "errors"

var (
	// ErrEmailJobNotFound is returned when a queued job does not exist.
	ErrEmailJobNotFound = errors.New("email job not found")

	// ErrNoRecipients is returned when a digest has nobody to go to.
	ErrNoRecipients = errors.New("no alert recipients configured")

	// ErrInvalidTemplate is returned for a job whose template type has no renderer.
	ErrInvalidTemplate = errors.New("invalid email template")
)

// EmailErrorCode identifies queue, delivery and template failures.
type EmailErrorCode string

const (
	ErrCodeEmailQueueFailed EmailErrorCode = "EMAIL-010001"
	ErrCodeNoRecipients     EmailErrorCode = "EMAIL-010003"

	// Delivery outcomes drive the worker's retry decision.
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"

	ErrCodeInvalidTemplate      EmailErrorCode = "EMAIL-030001"
	ErrCodeTemplateRenderFailed EmailErrorCode = "EMAIL-030002"
)

// EmailError carries a code alongside the underlying failure.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

func (e *EmailError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{Code: code, Message: message, Err: err}
}
