// Package value contains monthly value use cases.
package value

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/application/usecase/objective"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
)

// Accepted year range for recorded values.
const (
	MinYear = 2020
	MaxYear = 2030
)

// UpsertValueInput represents the input for recording a monthly value.
type UpsertValueInput struct {
	ObjectiveID uuid.UUID
	Month       int
	Year        int
	Value       float64
}

// UpsertValueOutput represents the output of recording a monthly value.
type UpsertValueOutput struct {
	Objective *entity.Objective
	Value     entity.MonthlyValue
	Progress  progress.Result
}

// UpsertValueUseCase records or replaces the value of one month.
type UpsertValueUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
	cache         adapter.AnalyticsCache
	clock         adapter.Clock
}

// NewUpsertValueUseCase creates a new UpsertValueUseCase instance.
func NewUpsertValueUseCase(
	objectiveRepo adapter.ObjectiveRepository,
	valueRepo adapter.ValueRepository,
	cache adapter.AnalyticsCache,
	clock adapter.Clock,
) *UpsertValueUseCase {
	return &UpsertValueUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
		cache:         cache,
		clock:         clock,
	}
}

// Execute stores the value and returns the objective's refreshed progress.
func (uc *UpsertValueUseCase) Execute(ctx context.Context, input UpsertValueInput) (*UpsertValueOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewValueError(domainerror.ErrCodeInvalidMonth, "Month must be between 1 and 12", domainerror.ErrInvalidMonth)
	}
	if input.Year < MinYear || input.Year > MaxYear {
		return nil, domainerror.NewValueError(
			domainerror.ErrCodeInvalidYear,
			fmt.Sprintf("Year must be between %d and %d", MinYear, MaxYear),
			domainerror.ErrInvalidYear,
		)
	}
	if math.IsNaN(input.Value) || math.IsInf(input.Value, 0) {
		return nil, domainerror.NewValueError(domainerror.ErrCodeMissingValueFields, "value must be a finite number", nil)
	}

	obj, err := objective.FindObjective(ctx, uc.objectiveRepo, input.ObjectiveID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	value := entity.MonthlyValue{
		ObjectiveID: obj.ID,
		Month:       input.Month,
		Year:        input.Year,
		Value:       input.Value,
		UpdatedAt:   now.UTC(),
	}
	if err := uc.valueRepo.Upsert(ctx, &value); err != nil {
		return nil, fmt.Errorf("failed to save value: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)

	values, err := uc.valueRepo.FindByObjectiveID(ctx, obj.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load values: %w", err)
	}
	result, err := progress.Calculate(obj, values, now)
	if err != nil {
		return nil, analytics.WrapCalculationError(err)
	}

	slog.Info("objective value recorded",
		"objective_id", obj.ID,
		"year", input.Year,
		"month", input.Month,
	)

	return &UpsertValueOutput{Objective: obj, Value: value, Progress: result}, nil
}
