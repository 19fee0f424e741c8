package value

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
)

// DeleteValueInput represents the input for deleting one month's value.
type DeleteValueInput struct {
	ObjectiveID uuid.UUID
	Year        int
	Month       int
}

// DeleteValueUseCase removes one month's value.
type DeleteValueUseCase struct {
	valueRepo adapter.ValueRepository
	cache     adapter.AnalyticsCache
}

// NewDeleteValueUseCase creates a new DeleteValueUseCase instance.
func NewDeleteValueUseCase(valueRepo adapter.ValueRepository, cache adapter.AnalyticsCache) *DeleteValueUseCase {
	return &DeleteValueUseCase{
		valueRepo: valueRepo,
		cache:     cache,
	}
}

// Execute deletes the value.
func (uc *DeleteValueUseCase) Execute(ctx context.Context, input DeleteValueInput) error {
	if input.Month < 1 || input.Month > 12 {
		return domainerror.NewValueError(domainerror.ErrCodeInvalidMonth, "Month must be between 1 and 12", domainerror.ErrInvalidMonth)
	}

	if err := uc.valueRepo.Delete(ctx, input.ObjectiveID, input.Year, input.Month); err != nil {
		if errors.Is(err, domainerror.ErrValueNotFound) {
			return domainerror.NewValueError(domainerror.ErrCodeValueNotFound, "value not found", err)
		}
		return fmt.Errorf("failed to delete value: %w", err)
	}
	analytics.InvalidateCache(ctx, uc.cache)
	return nil
}
