package error

import "errors"

// Chat domain errors.
var (
	// ErrMissingMessages is returned when a chat request carries no messages.
	ErrMissingMessages = errors.New("messages array is required")

	// ErrInvalidMessageRole is returned for roles other than user and assistant.
	ErrInvalidMessageRole = errors.New("invalid message role")

	// ErrChatUnavailable is returned when no language model is configured.
	ErrChatUnavailable = errors.New("chat assistant is not configured")

	// ErrChatProviderFailed is returned when the language model call fails.
	ErrChatProviderFailed = errors.New("chat provider request failed")
)

// ChatErrorCode defines error codes for chat errors.
type ChatErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeMissingMessages    ChatErrorCode = "CHAT-010001"
	ErrCodeInvalidMessageRole ChatErrorCode = "CHAT-010002"
	ErrCodeChatRateLimited    ChatErrorCode = "CHAT-010003"

	// Provider errors (02XXXX)
	ErrCodeChatUnavailable    ChatErrorCode = "CHAT-020001"
	ErrCodeChatProviderFailed ChatErrorCode = "CHAT-020002"
)

// ChatError represents a chat error with code and message.
type ChatError struct {
	Code    ChatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChatError) Unwrap() error {
	return e.Err
}

// NewChatError creates a new ChatError with the given code and message.
func NewChatError(code ChatErrorCode, message string, err error) *ChatError {
	return &ChatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
