package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kpi-dashboard/backend/internal/application/usecase/value"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

// ValueController handles monthly value endpoints.
type ValueController struct {
	listUseCase   *value.ListValuesUseCase
	upsertUseCase *value.UpsertValueUseCase
	deleteUseCase *value.DeleteValueUseCase
}

// NewValueController creates a new value controller instance.
func NewValueController(
	listUseCase *value.ListValuesUseCase,
	upsertUseCase *value.UpsertValueUseCase,
	deleteUseCase *value.DeleteValueUseCase,
) *ValueController {
	return &ValueController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /objectives/:id/values requests.
func (c *ValueController) List(ctx *gin.Context) {
	objectiveID, ok := parseObjectiveID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), value.ListValuesInput{ObjectiveID: objectiveID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ValueListResponse{Values: dto.ToValueResponses(output.Values)})
}

// Upsert handles PUT /objectives/:id/values requests.
func (c *ValueController) Upsert(ctx *gin.Context) {
	objectiveID, ok := parseObjectiveID(ctx)
	if !ok {
		return
	}

	var req dto.UpsertValueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeMissingValueFields))
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), value.UpsertValueInput{
		ObjectiveID: objectiveID,
		Month:       req.Month,
		Year:        req.Year,
		Value:       *req.Value,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpsertValueResponse{
		Value:    dto.ToValueResponse(output.Value),
		Progress: dto.ToProgressResponse(output.Objective, output.Progress),
	})
}

// Delete handles DELETE /objectives/:id/values/:year/:month requests.
func (c *ValueController) Delete(ctx *gin.Context) {
	objectiveID, ok := parseObjectiveID(ctx)
	if !ok {
		return
	}

	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid year",
			Code:  string(domainerror.ErrCodeInvalidYear),
		})
		return
	}
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), value.DeleteValueInput{
		ObjectiveID: objectiveID,
		Year:        year,
		Month:       month,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
