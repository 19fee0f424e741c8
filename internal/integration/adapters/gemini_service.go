package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiChatModel implements adapter.ChatModel using Google Gemini.
type GeminiChatModel struct {
	apiKey    string
	modelName string
}

// NewGeminiChatModel creates a new Gemini chat model.
func NewGeminiChatModel(apiKey, modelName string) *GeminiChatModel {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiChatModel{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini API key is configured.
func (s *GeminiChatModel) IsAvailable() bool {
	return s.apiKey != ""
}

// Complete sends the conversation to Gemini and returns the reply text.
func (s *GeminiChatModel) Complete(ctx context.Context, request adapter.ChatRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}
	if len(request.Messages) == 0 {
		return "", fmt.Errorf("conversation is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(request.Temperature)
	model.SetMaxOutputTokens(request.MaxTokens)
	if request.SystemPrompt != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(request.SystemPrompt))
	}

	history, last := splitConversation(request.Messages)
	session := model.StartChat()
	session.History = history

	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp)
}

// splitConversation maps all but the last message to Gemini history.
func splitConversation(messages []adapter.ChatMessage) ([]*genai.Content, adapter.ChatMessage) {
	last := messages[len(messages)-1]
	history := make([]*genai.Content, 0, len(messages)-1)
	for _, m := range messages[:len(messages)-1] {
		history = append(history, &genai.Content{
			Role:  geminiRole(m.Role),
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return history, last
}

func geminiRole(role adapter.ChatRole) string {
	if role == adapter.ChatRoleAssistant {
		return "model"
	}
	return "user"
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in response")
	}
	return sb.String(), nil
}
