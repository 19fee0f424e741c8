// Package chat contains the analytics assistant use case.
package chat

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

const (
	// DefaultTemperature is used when a request omits temperature.
	DefaultTemperature float32 = 0.1
	// DefaultMaxTokens caps the reply length when a request omits maxTokens.
	DefaultMaxTokens int32 = 2000
)

var controlTokens = regexp.MustCompile(`(?s)<ctrl\d+>.*?</ctrl\d+>|</?ctrl\d+>`)

// ChatInput represents the input for a chat completion.
// A nil Department asks about every department.
type ChatInput struct {
	Department  *valueobject.Department
	Messages    []adapter.ChatMessage
	Temperature *float32
	MaxTokens   *int32
}

// ChatOutput represents the output of a chat completion.
type ChatOutput struct {
	Reply string
}

// ChatUseCase answers questions about objectives using the current analytics.
type ChatUseCase struct {
	model      adapter.ChatModel
	department *analytics.GetDepartmentAnalyticsUseCase
	company    *analytics.GetCompanyAnalyticsUseCase
	clock      adapter.Clock
}

// NewChatUseCase creates a new ChatUseCase instance.
func NewChatUseCase(
	model adapter.ChatModel,
	department *analytics.GetDepartmentAnalyticsUseCase,
	company *analytics.GetCompanyAnalyticsUseCase,
	clock adapter.Clock,
) *ChatUseCase {
	return &ChatUseCase{
		model:      model,
		department: department,
		company:    company,
		clock:      clock,
	}
}

// Execute validates the conversation, builds the system prompt and asks the model.
func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	if len(input.Messages) == 0 {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeMissingMessages,
			"Messages array is required",
			domainerror.ErrMissingMessages,
		)
	}
	for _, m := range input.Messages {
		if m.Role != adapter.ChatRoleUser && m.Role != adapter.ChatRoleAssistant {
			return nil, domainerror.NewChatError(
				domainerror.ErrCodeInvalidMessageRole,
				"role must be user or assistant",
				domainerror.ErrInvalidMessageRole,
			)
		}
	}

	if uc.model == nil || !uc.model.IsAvailable() {
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeChatUnavailable,
			"chat assistant is not configured",
			domainerror.ErrChatUnavailable,
		)
	}

	scope, departments, err := uc.loadAnalytics(ctx, input.Department)
	if err != nil {
		return nil, err
	}

	systemPrompt, err := buildSystemPrompt(scope, departments, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	request := adapter.ChatRequest{
		SystemPrompt: systemPrompt,
		Messages:     input.Messages,
		Temperature:  DefaultTemperature,
		MaxTokens:    DefaultMaxTokens,
	}
	if input.Temperature != nil {
		request.Temperature = *input.Temperature
	}
	if input.MaxTokens != nil && *input.MaxTokens > 0 {
		request.MaxTokens = *input.MaxTokens
	}

	reply, err := uc.model.Complete(ctx, request)
	if err != nil {
		slog.Error("chat completion failed", "scope", scope, "error", err)
		return nil, domainerror.NewChatError(
			domainerror.ErrCodeChatProviderFailed,
			"failed to get a reply from the assistant",
			err,
		)
	}

	return &ChatOutput{Reply: CleanReply(reply)}, nil
}

func (uc *ChatUseCase) loadAnalytics(ctx context.Context, department *valueobject.Department) (string, []*progress.DepartmentAnalytics, error) {
	if department != nil {
		out, err := uc.department.Execute(ctx, analytics.GetDepartmentAnalyticsInput{Department: *department})
		if err != nil {
			return "", nil, err
		}
		return string(*department), []*progress.DepartmentAnalytics{out.Analytics}, nil
	}

	out, err := uc.company.Execute(ctx)
	if err != nil {
		return "", nil, err
	}
	return "", out.Departments, nil
}

// CleanReply strips model control tokens from a reply.
func CleanReply(reply string) string {
	return strings.TrimSpace(controlTokens.ReplaceAllString(reply, ""))
}
