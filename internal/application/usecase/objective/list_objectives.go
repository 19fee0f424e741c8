package objective

import (
	"context"
	"fmt"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
)

// ListObjectivesOutput represents the output of listing every objective.
type ListObjectivesOutput struct {
	Objectives []View
}

// ListObjectivesUseCase lists the objectives of all departments.
type ListObjectivesUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
	clock         adapter.Clock
}

// NewListObjectivesUseCase creates a new ListObjectivesUseCase instance.
func NewListObjectivesUseCase(objectiveRepo adapter.ObjectiveRepository, valueRepo adapter.ValueRepository, clock adapter.Clock) *ListObjectivesUseCase {
	return &ListObjectivesUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
		clock:         clock,
	}
}

// Execute lists every objective with values and progress.
func (uc *ListObjectivesUseCase) Execute(ctx context.Context) (*ListObjectivesOutput, error) {
	objectives, err := uc.objectiveRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	items, err := analytics.LoadValues(ctx, uc.valueRepo, objectives)
	if err != nil {
		return nil, err
	}
	views, err := buildViews(items, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return &ListObjectivesOutput{Objectives: views}, nil
}
