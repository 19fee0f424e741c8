package dto

import "github.com/kpi-dashboard/backend/internal/application/adapter"

// ChatMessageRequest is one turn of the conversation.
type ChatMessageRequest struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content"`
}

// ChatRequest represents the request body for the assistant. An empty
// message list is rejected by the use case so that it reports its own code.
type ChatRequest struct {
	Messages    []ChatMessageRequest `json:"messages" binding:"dive"`
	Temperature *float32             `json:"temperature,omitempty" binding:"omitempty,min=0,max=2"`
	MaxTokens   *int32               `json:"maxTokens,omitempty" binding:"omitempty,min=1,max=8192"`
}

// ChatResponse represents the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// ToChatMessages converts request turns to adapter messages.
func (r ChatRequest) ToChatMessages() []adapter.ChatMessage {
	messages := make([]adapter.ChatMessage, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = adapter.ChatMessage{Role: adapter.ChatRole(m.Role), Content: m.Content}
	}
	return messages
}
