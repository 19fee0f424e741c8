package objective

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
)

// DeleteObjectiveInput represents the input for objective deletion.
type DeleteObjectiveInput struct {
	ID uuid.UUID
}

// DeleteObjectiveUseCase deletes an objective together with its values.
type DeleteObjectiveUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	cache         adapter.AnalyticsCache
}

// NewDeleteObjectiveUseCase creates a new DeleteObjectiveUseCase instance.
func NewDeleteObjectiveUseCase(objectiveRepo adapter.ObjectiveRepository, cache adapter.AnalyticsCache) *DeleteObjectiveUseCase {
	return &DeleteObjectiveUseCase{
		objectiveRepo: objectiveRepo,
		cache:         cache,
	}
}

// Execute performs the deletion.
func (uc *DeleteObjectiveUseCase) Execute(ctx context.Context, input DeleteObjectiveInput) error {
	if err := uc.objectiveRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrObjectiveNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to delete objective: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)

	slog.Info("objective deleted", "objective_id", input.ID)
	return nil
}
