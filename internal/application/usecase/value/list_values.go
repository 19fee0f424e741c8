package value

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/objective"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
)

// ListValuesInput represents the input for listing an objective's values.
type ListValuesInput struct {
	ObjectiveID uuid.UUID
}

// ListValuesOutput represents the output of listing an objective's values.
type ListValuesOutput struct {
	Values []entity.MonthlyValue
}

// ListValuesUseCase lists the monthly values of an objective.
type ListValuesUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
}

// NewListValuesUseCase creates a new ListValuesUseCase instance.
func NewListValuesUseCase(objectiveRepo adapter.ObjectiveRepository, valueRepo adapter.ValueRepository) *ListValuesUseCase {
	return &ListValuesUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
	}
}

// Execute lists the values ordered by year and month.
func (uc *ListValuesUseCase) Execute(ctx context.Context, input ListValuesInput) (*ListValuesOutput, error) {
	if _, err := objective.FindObjective(ctx, uc.objectiveRepo, input.ObjectiveID); err != nil {
		return nil, err
	}

	values, err := uc.valueRepo.FindByObjectiveID(ctx, input.ObjectiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to list values: %w", err)
	}
	return &ListValuesOutput{Values: values}, nil
}
