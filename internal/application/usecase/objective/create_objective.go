package objective

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
)

// CreateObjectiveInput represents the input for objective creation.
type CreateObjectiveInput struct {
	Fields
	OrderIndex *int // Optional, defaults to the end of the department
}

// CreateObjectiveOutput represents the output of objective creation.
type CreateObjectiveOutput struct {
	Objective *entity.Objective
}

// CreateObjectiveUseCase handles objective creation logic.
type CreateObjectiveUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	cache         adapter.AnalyticsCache
	clock         adapter.Clock
}

// NewCreateObjectiveUseCase creates a new CreateObjectiveUseCase instance.
func NewCreateObjectiveUseCase(objectiveRepo adapter.ObjectiveRepository, cache adapter.AnalyticsCache, clock adapter.Clock) *CreateObjectiveUseCase {
	return &CreateObjectiveUseCase{
		objectiveRepo: objectiveRepo,
		cache:         cache,
		clock:         clock,
	}
}

// Execute performs the objective creation.
func (uc *CreateObjectiveUseCase) Execute(ctx context.Context, input CreateObjectiveInput) (*CreateObjectiveOutput, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	objective := newObjective(input.Fields, uc.clock)

	if input.OrderIndex != nil {
		objective.OrderIndex = *input.OrderIndex
	} else {
		next, err := uc.objectiveRepo.NextOrderIndex(ctx, input.Department)
		if err != nil {
			return nil, fmt.Errorf("failed to compute order index: %w", err)
		}
		objective.OrderIndex = next
	}

	if err := uc.objectiveRepo.Create(ctx, objective); err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)

	slog.Info("objective created", "objective_id", objective.ID, "department", objective.Department)

	return &CreateObjectiveOutput{Objective: objective}, nil
}

func newObjective(f Fields, clock adapter.Clock) *entity.Objective {
	return entity.NewObjective(
		f.Department,
		f.Name,
		f.SmartDescription,
		f.Type,
		f.Target,
		f.NumberFormat,
		f.StartDate,
		f.EndDate,
		f.ReverseLogic,
		clock.Now(),
	)
}
