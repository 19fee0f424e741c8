package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/application/usecase/objective"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

// DepartmentController handles department-scoped listings and analytics.
type DepartmentController struct {
	listUseCase      *objective.ListDepartmentObjectivesUseCase
	analyticsUseCase *analytics.GetDepartmentAnalyticsUseCase
}

// NewDepartmentController creates a new department controller instance.
func NewDepartmentController(
	listUseCase *objective.ListDepartmentObjectivesUseCase,
	analyticsUseCase *analytics.GetDepartmentAnalyticsUseCase,
) *DepartmentController {
	return &DepartmentController{
		listUseCase:      listUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// Objectives handles GET /departments/:department/objectives requests.
// startMonth and endMonth switch the listing to period-scoped progress.
func (c *DepartmentController) Objectives(ctx *gin.Context) {
	var query dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeInvalidPeriod))
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), objective.ListDepartmentObjectivesInput{
		Department: valueobject.Department(ctx.Param("department")),
		Period:     query.ToPeriod(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObjectiveViewListResponse(output.Objectives, output.PeriodLabel))
}

// Analytics handles GET /departments/:department/analytics requests.
func (c *DepartmentController) Analytics(ctx *gin.Context) {
	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), analytics.GetDepartmentAnalyticsInput{
		Department: valueobject.Department(ctx.Param("department")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	if output.Cached {
		ctx.Header("X-Cache", "HIT")
	} else {
		ctx.Header("X-Cache", "MISS")
	}
	ctx.JSON(http.StatusOK, dto.ToDepartmentAnalyticsResponse(output.Analytics))
}
