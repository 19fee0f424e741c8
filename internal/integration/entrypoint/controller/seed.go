package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpi-dashboard/backend/internal/application/usecase/seed"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

// SeedController loads fixture scenarios.
type SeedController struct {
	seedUseCase *seed.SeedUseCase
}

// NewSeedController creates a new seed controller instance.
func NewSeedController(seedUseCase *seed.SeedUseCase) *SeedController {
	return &SeedController{
		seedUseCase: seedUseCase,
	}
}

// Seed handles POST /seed?scenario=name requests.
func (c *SeedController) Seed(ctx *gin.Context) {
	scenario := ctx.DefaultQuery("scenario", seed.DefaultScenario)

	output, err := c.seedUseCase.Execute(ctx.Request.Context(), seed.SeedInput{Scenario: scenario})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSeedResponse(output))
}

// Scenarios handles GET /seed/scenarios requests.
func (c *SeedController) Scenarios(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SeedScenariosResponse{Scenarios: seed.Scenarios()})
}
