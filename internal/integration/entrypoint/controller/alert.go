package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpi-dashboard/backend/internal/application/usecase/alert"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

// AlertController triggers the expiry digest on demand.
type AlertController struct {
	digestUseCase     *alert.SendExpiryDigestUseCase
	defaultRecipients []string
	defaultWindowDays int
}

// NewAlertController creates a new alert controller instance. The defaults
// apply when a request does not name recipients or a window.
func NewAlertController(digestUseCase *alert.SendExpiryDigestUseCase, defaultRecipients []string, defaultWindowDays int) *AlertController {
	return &AlertController{
		digestUseCase:     digestUseCase,
		defaultRecipients: defaultRecipients,
		defaultWindowDays: defaultWindowDays,
	}
}

// ExpiryDigest handles POST /alerts/expiry-digest requests.
func (c *AlertController) ExpiryDigest(ctx *gin.Context) {
	var req dto.ExpiryDigestRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			respondBindError(ctx, err, string(domainerror.ErrCodeNoRecipients))
			return
		}
	}

	input := alert.SendExpiryDigestInput{
		Recipients: c.defaultRecipients,
		WindowDays: c.defaultWindowDays,
	}
	if len(req.Recipients) > 0 {
		input.Recipients = req.Recipients
	}
	if req.WindowDays != nil {
		input.WindowDays = *req.WindowDays
	}

	output, err := c.digestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ToExpiryDigestResponse(output))
}
