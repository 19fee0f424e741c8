package objective

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// ReorderObjectivesInput represents the input for reordering a department.
type ReorderObjectivesInput struct {
	Department valueobject.Department
	OrderedIDs []uuid.UUID
}

// ReorderObjectivesUseCase sets the display order of a department.
type ReorderObjectivesUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	cache         adapter.AnalyticsCache
}

// NewReorderObjectivesUseCase creates a new ReorderObjectivesUseCase instance.
func NewReorderObjectivesUseCase(objectiveRepo adapter.ObjectiveRepository, cache adapter.AnalyticsCache) *ReorderObjectivesUseCase {
	return &ReorderObjectivesUseCase{
		objectiveRepo: objectiveRepo,
		cache:         cache,
	}
}

// Execute assigns each objective its position in OrderedIDs.
func (uc *ReorderObjectivesUseCase) Execute(ctx context.Context, input ReorderObjectivesInput) error {
	if !input.Department.IsValid() {
		return domainerror.NewObjectiveError(domainerror.ErrCodeInvalidDepartment, "invalid department", domainerror.ErrInvalidDepartment)
	}
	if len(input.OrderedIDs) == 0 {
		return domainerror.NewObjectiveError(domainerror.ErrCodeEmptyObjectiveIDs, "orderedIds must be a non-empty array", domainerror.ErrEmptyObjectiveIDs)
	}

	seen := make(map[uuid.UUID]struct{}, len(input.OrderedIDs))
	for _, id := range input.OrderedIDs {
		if _, dup := seen[id]; dup {
			return domainerror.NewObjectiveError(domainerror.ErrCodeReorderMismatch, "orderedIds contains duplicates", domainerror.ErrReorderMismatch)
		}
		seen[id] = struct{}{}
	}

	if err := uc.objectiveRepo.Reorder(ctx, input.Department, input.OrderedIDs); err != nil {
		if errors.Is(err, domainerror.ErrReorderMismatch) {
			return domainerror.NewObjectiveError(domainerror.ErrCodeReorderMismatch, "objectives do not belong to department", err)
		}
		return fmt.Errorf("failed to reorder objectives: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)
	return nil
}
