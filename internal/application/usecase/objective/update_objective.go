package objective

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// UpdateObjectiveInput represents the input for a partial objective update.
// Nil fields are left unchanged.
type UpdateObjectiveInput struct {
	ID               uuid.UUID
	Name             *string
	SmartDescription *string
	Type             *valueobject.ObjectiveType
	Target           *float64
	NumberFormat     *valueobject.NumberFormat
	StartDate        *time.Time
	EndDate          *time.Time
	ReverseLogic     *bool
	OrderIndex       *int
}

func (in UpdateObjectiveInput) empty() bool {
	return in.Name == nil && in.SmartDescription == nil && in.Type == nil && in.Target == nil &&
		in.NumberFormat == nil && in.StartDate == nil && in.EndDate == nil && in.ReverseLogic == nil &&
		in.OrderIndex == nil
}

// UpdateObjectiveOutput represents the output of an objective update.
type UpdateObjectiveOutput struct {
	Objective *entity.Objective
}

// UpdateObjectiveUseCase handles partial objective updates.
type UpdateObjectiveUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	cache         adapter.AnalyticsCache
	clock         adapter.Clock
}

// NewUpdateObjectiveUseCase creates a new UpdateObjectiveUseCase instance.
func NewUpdateObjectiveUseCase(objectiveRepo adapter.ObjectiveRepository, cache adapter.AnalyticsCache, clock adapter.Clock) *UpdateObjectiveUseCase {
	return &UpdateObjectiveUseCase{
		objectiveRepo: objectiveRepo,
		cache:         cache,
		clock:         clock,
	}
}

// Execute applies the patch and validates the resulting objective.
func (uc *UpdateObjectiveUseCase) Execute(ctx context.Context, input UpdateObjectiveInput) (*UpdateObjectiveOutput, error) {
	if input.empty() {
		return nil, domainerror.NewObjectiveError(domainerror.ErrCodeNoFieldsToUpdate, "no fields to update", domainerror.ErrNoFieldsToUpdate)
	}

	objective, err := FindObjective(ctx, uc.objectiveRepo, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		objective.Name = *input.Name
	}
	if input.SmartDescription != nil {
		if strings.TrimSpace(*input.SmartDescription) == "" {
			return nil, domainerror.NewObjectiveError(domainerror.ErrCodeMissingObjectiveField, "objective_smart must not be empty", nil)
		}
		objective.SmartDescription = *input.SmartDescription
	}
	if input.Type != nil {
		objective.Type = *input.Type
	}
	if input.Target != nil {
		if math.IsNaN(*input.Target) || math.IsInf(*input.Target, 0) {
			return nil, domainerror.NewObjectiveError(domainerror.ErrCodeMissingObjectiveField, "target must be a finite number", nil)
		}
		objective.Target = *input.Target
	}
	if input.NumberFormat != nil {
		objective.NumberFormat = *input.NumberFormat
	}
	if input.StartDate != nil {
		objective.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		objective.EndDate = *input.EndDate
	}
	if input.ReverseLogic != nil {
		objective.ReverseLogic = *input.ReverseLogic
	}
	if input.OrderIndex != nil {
		objective.OrderIndex = *input.OrderIndex
	}

	if err := validateShape(objective.Type, objective.NumberFormat, objective.StartDate, objective.EndDate); err != nil {
		return nil, err
	}
	objective.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.objectiveRepo.Update(ctx, objective); err != nil {
		return nil, fmt.Errorf("failed to update objective: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)

	slog.Info("objective updated", "objective_id", objective.ID)

	return &UpdateObjectiveOutput{Objective: objective}, nil
}
