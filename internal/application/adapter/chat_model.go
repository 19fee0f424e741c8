package adapter

import "context"

// ChatRole is the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatRequest is a full completion request.
type ChatRequest struct {
	SystemPrompt string
	Messages     []ChatMessage
	Temperature  float32
	MaxTokens    int32
}

// ChatModel defines the interface for the language model behind the assistant.
type ChatModel interface {
	// Complete returns the reply to the last message of the conversation.
	Complete(ctx context.Context, request ChatRequest) (string, error)

	// IsAvailable reports whether the model is configured.
	IsAvailable() bool
}
