package objective

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
)

// GetObjectiveInput represents the input for fetching one objective.
type GetObjectiveInput struct {
	ID uuid.UUID
}

// GetObjectiveOutput represents the output of fetching one objective.
type GetObjectiveOutput struct {
	View View
}

// GetObjectiveUseCase returns an objective with values and progress.
type GetObjectiveUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
	clock         adapter.Clock
}

// NewGetObjectiveUseCase creates a new GetObjectiveUseCase instance.
func NewGetObjectiveUseCase(objectiveRepo adapter.ObjectiveRepository, valueRepo adapter.ValueRepository, clock adapter.Clock) *GetObjectiveUseCase {
	return &GetObjectiveUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
		clock:         clock,
	}
}

// Execute fetches the objective.
func (uc *GetObjectiveUseCase) Execute(ctx context.Context, input GetObjectiveInput) (*GetObjectiveOutput, error) {
	objective, err := FindObjective(ctx, uc.objectiveRepo, input.ID)
	if err != nil {
		return nil, err
	}

	items, err := analytics.LoadValues(ctx, uc.valueRepo, []*entity.Objective{objective})
	if err != nil {
		return nil, err
	}
	views, err := buildViews(items, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &GetObjectiveOutput{View: views[0]}, nil
}

// FindObjective loads an objective, mapping a miss to a coded not-found error.
func FindObjective(ctx context.Context, objectiveRepo adapter.ObjectiveRepository, id uuid.UUID) (*entity.Objective, error) {
	objective, err := objectiveRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrObjectiveNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to find objective: %w", err)
	}
	return objective, nil
}

func notFound() error {
	return domainerror.NewObjectiveError(
		domainerror.ErrCodeObjectiveNotFound,
		"objective not found",
		domainerror.ErrObjectiveNotFound,
	)
}
