package objective

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// BulkCreateObjectivesInput represents the input for bulk creation.
type BulkCreateObjectivesInput struct {
	Objectives []Fields
}

// BulkCreateObjectivesOutput represents the output of bulk creation.
type BulkCreateObjectivesOutput struct {
	Objectives []*entity.Objective
}

// BulkCreateObjectivesUseCase creates several objectives atomically.
type BulkCreateObjectivesUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	cache         adapter.AnalyticsCache
	clock         adapter.Clock
}

// NewBulkCreateObjectivesUseCase creates a new BulkCreateObjectivesUseCase instance.
func NewBulkCreateObjectivesUseCase(objectiveRepo adapter.ObjectiveRepository, cache adapter.AnalyticsCache, clock adapter.Clock) *BulkCreateObjectivesUseCase {
	return &BulkCreateObjectivesUseCase{
		objectiveRepo: objectiveRepo,
		cache:         cache,
		clock:         clock,
	}
}

// Execute validates every objective before inserting any of them. Order
// indexes continue after each department's current last objective.
func (uc *BulkCreateObjectivesUseCase) Execute(ctx context.Context, input BulkCreateObjectivesInput) (*BulkCreateObjectivesOutput, error) {
	if len(input.Objectives) == 0 {
		return nil, domainerror.NewObjectiveError(
			domainerror.ErrCodeMissingObjectiveField,
			"objectives must be a non-empty array",
			nil,
		)
	}

	for i, f := range input.Objectives {
		if err := f.validate(); err != nil {
			var objErr *domainerror.ObjectiveError
			if errors.As(err, &objErr) {
				return nil, domainerror.NewObjectiveError(objErr.Code, fmt.Sprintf("objective %d: %s", i+1, objErr.Message), objErr.Err)
			}
			return nil, err
		}
	}

	nextIndex := make(map[valueobject.Department]int)
	objectives := make([]*entity.Objective, len(input.Objectives))
	for i, f := range input.Objectives {
		next, ok := nextIndex[f.Department]
		if !ok {
			var err error
			next, err = uc.objectiveRepo.NextOrderIndex(ctx, f.Department)
			if err != nil {
				return nil, fmt.Errorf("failed to compute order index: %w", err)
			}
		}
		objective := newObjective(f, uc.clock)
		objective.OrderIndex = next
		nextIndex[f.Department] = next + 1
		objectives[i] = objective
	}

	if err := uc.objectiveRepo.CreateMany(ctx, objectives); err != nil {
		return nil, fmt.Errorf("failed to create objectives: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)

	slog.Info("objectives created in bulk", "count", len(objectives))

	return &BulkCreateObjectivesOutput{Objectives: objectives}, nil
}
