package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpi-dashboard/backend/internal/application/usecase/chat"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

// ChatController handles the analytics assistant endpoints.
type ChatController struct {
	chatUseCase *chat.ChatUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(chatUseCase *chat.ChatUseCase) *ChatController {
	return &ChatController{
		chatUseCase: chatUseCase,
	}
}

// Company handles POST /chat requests over every department.
func (c *ChatController) Company(ctx *gin.Context) {
	c.reply(ctx, nil)
}

// Department handles POST /departments/:department/chat requests.
func (c *ChatController) Department(ctx *gin.Context) {
	department := valueobject.Department(ctx.Param("department"))
	c.reply(ctx, &department)
}

func (c *ChatController) reply(ctx *gin.Context, department *valueobject.Department) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeMissingMessages))
		return
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), chat.ChatInput{
		Department:  department,
		Messages:    req.ToChatMessages(),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Response: output.Reply})
}
