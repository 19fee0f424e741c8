// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/usecase/objective"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
	"github.com/kpi-dashboard/backend/internal/integration/entrypoint/dto"
)

// ObjectiveController handles objective endpoints.
type ObjectiveController struct {
	listUseCase       *objective.ListObjectivesUseCase
	createUseCase     *objective.CreateObjectiveUseCase
	bulkCreateUseCase *objective.BulkCreateObjectivesUseCase
	getUseCase        *objective.GetObjectiveUseCase
	updateUseCase     *objective.UpdateObjectiveUseCase
	deleteUseCase     *objective.DeleteObjectiveUseCase
	bulkDeleteUseCase *objective.BulkDeleteObjectivesUseCase
	reorderUseCase    *objective.ReorderObjectivesUseCase
}

// NewObjectiveController creates a new objective controller instance.
func NewObjectiveController(
	listUseCase *objective.ListObjectivesUseCase,
	createUseCase *objective.CreateObjectiveUseCase,
	bulkCreateUseCase *objective.BulkCreateObjectivesUseCase,
	getUseCase *objective.GetObjectiveUseCase,
	updateUseCase *objective.UpdateObjectiveUseCase,
	deleteUseCase *objective.DeleteObjectiveUseCase,
	bulkDeleteUseCase *objective.BulkDeleteObjectivesUseCase,
	reorderUseCase *objective.ReorderObjectivesUseCase,
) *ObjectiveController {
	return &ObjectiveController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		bulkCreateUseCase: bulkCreateUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
		reorderUseCase:    reorderUseCase,
	}
}

// List handles GET /objectives requests.
func (c *ObjectiveController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObjectiveViewListResponse(output.Objectives, ""))
}

// Create handles POST /objectives requests.
func (c *ObjectiveController) Create(ctx *gin.Context) {
	var req dto.CreateObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeMissingObjectiveField))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), objective.CreateObjectiveInput{
		Fields:     req.ToFields(),
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToObjectiveResponse(output.Objective))
}

// BulkCreate handles POST /objectives/bulk requests.
func (c *ObjectiveController) BulkCreate(ctx *gin.Context) {
	var req dto.BulkCreateObjectivesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeMissingObjectiveField))
		return
	}

	fields := make([]objective.Fields, len(req.Objectives))
	for i, item := range req.Objectives {
		fields[i] = item.ToFields()
	}

	output, err := c.bulkCreateUseCase.Execute(ctx.Request.Context(), objective.BulkCreateObjectivesInput{Objectives: fields})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToObjectiveListResponse(output.Objectives))
}

// Get handles GET /objectives/:id requests.
func (c *ObjectiveController) Get(ctx *gin.Context) {
	objectiveID, ok := parseObjectiveID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), objective.GetObjectiveInput{ID: objectiveID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObjectiveViewResponse(output.View))
}

// Update handles PATCH /objectives/:id requests.
func (c *ObjectiveController) Update(ctx *gin.Context) {
	objectiveID, ok := parseObjectiveID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateObjectiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeMissingObjectiveField))
		return
	}

	input := objective.UpdateObjectiveInput{
		ID:               objectiveID,
		Name:             req.ObjectiveName,
		SmartDescription: req.ObjectiveSmart,
		Target:           req.TargetNumeric,
		ReverseLogic:     req.ReverseLogic,
		OrderIndex:       req.OrderIndex,
	}

	if req.TypeObjective != nil {
		objectiveType := valueobject.ObjectiveType(*req.TypeObjective)
		input.Type = &objectiveType
	}
	if req.NumberFormat != nil {
		format := valueobject.NumberFormat(*req.NumberFormat)
		input.NumberFormat = &format
	}
	if req.StartDate != nil {
		start, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			respondBindError(ctx, err, string(domainerror.ErrCodeInvalidDateRange))
			return
		}
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := dto.ParseDate(*req.EndDate)
		if err != nil {
			respondBindError(ctx, err, string(domainerror.ErrCodeInvalidDateRange))
			return
		}
		input.EndDate = &end
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToObjectiveResponse(output.Objective))
}

// Delete handles DELETE /objectives/:id requests.
func (c *ObjectiveController) Delete(ctx *gin.Context) {
	objectiveID, ok := parseObjectiveID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), objective.DeleteObjectiveInput{ID: objectiveID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// BulkDelete handles POST /objectives/bulk-delete requests.
func (c *ObjectiveController) BulkDelete(ctx *gin.Context) {
	var req dto.BulkDeleteObjectivesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeEmptyObjectiveIDs))
		return
	}

	ids, err := parseUUIDs(req.IDs)
	if err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeEmptyObjectiveIDs))
		return
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), objective.BulkDeleteObjectivesInput{IDs: ids})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkDeleteObjectivesResponse{DeletedCount: output.DeletedCount})
}

// Reorder handles POST /objectives/reorder requests.
func (c *ObjectiveController) Reorder(ctx *gin.Context) {
	var req dto.ReorderObjectivesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeReorderMismatch))
		return
	}

	ids, err := parseUUIDs(req.OrderedIDs)
	if err != nil {
		respondBindError(ctx, err, string(domainerror.ErrCodeReorderMismatch))
		return
	}

	err = c.reorderUseCase.Execute(ctx.Request.Context(), objective.ReorderObjectivesInput{
		Department: valueobject.Department(req.Department),
		OrderedIDs: ids,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Objectives reordered successfully"})
}

// parseObjectiveID reads the :id path parameter, writing a 400 when malformed.
func parseObjectiveID(ctx *gin.Context) (uuid.UUID, bool) {
	objectiveID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid objective ID format",
		})
		return uuid.Nil, false
	}
	return objectiveID, true
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
