package objective

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
)

// BulkDeleteObjectivesInput represents the input for bulk deletion.
type BulkDeleteObjectivesInput struct {
	IDs []uuid.UUID
}

// BulkDeleteObjectivesOutput represents the output of bulk deletion.
type BulkDeleteObjectivesOutput struct {
	DeletedCount int64
}

// BulkDeleteObjectivesUseCase deletes several objectives in one transaction.
type BulkDeleteObjectivesUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	cache         adapter.AnalyticsCache
}

// NewBulkDeleteObjectivesUseCase creates a new BulkDeleteObjectivesUseCase instance.
func NewBulkDeleteObjectivesUseCase(objectiveRepo adapter.ObjectiveRepository, cache adapter.AnalyticsCache) *BulkDeleteObjectivesUseCase {
	return &BulkDeleteObjectivesUseCase{
		objectiveRepo: objectiveRepo,
		cache:         cache,
	}
}

// Execute deletes the objectives. Unknown IDs are ignored and not counted.
func (uc *BulkDeleteObjectivesUseCase) Execute(ctx context.Context, input BulkDeleteObjectivesInput) (*BulkDeleteObjectivesOutput, error) {
	if len(input.IDs) == 0 {
		return nil, domainerror.NewObjectiveError(domainerror.ErrCodeEmptyObjectiveIDs, "ids must be a non-empty array", domainerror.ErrEmptyObjectiveIDs)
	}

	deleted, err := uc.objectiveRepo.DeleteMany(ctx, input.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to delete objectives: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)

	slog.Info("objectives deleted in bulk", "requested", len(input.IDs), "deleted", deleted)

	return &BulkDeleteObjectivesOutput{DeletedCount: deleted}, nil
}
