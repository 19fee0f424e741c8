// Package analytics contains the department analytics use cases and the
// helpers other use cases share to load objectives with their values.
package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
)

// LoadValues attaches the monthly values of each objective, preserving order.
func LoadValues(ctx context.Context, valueRepo adapter.ValueRepository, objectives []*entity.Objective) ([]entity.ObjectiveWithValues, error) {
	ids := make([]uuid.UUID, len(objectives))
	for i, o := range objectives {
		ids[i] = o.ID
	}

	byObjective, err := valueRepo.FindByObjectiveIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load objective values: %w", err)
	}

	out := make([]entity.ObjectiveWithValues, len(objectives))
	for i, o := range objectives {
		values := byObjective[o.ID]
		if values == nil {
			values = []entity.MonthlyValue{}
		}
		out[i] = entity.ObjectiveWithValues{Objective: o, Values: values}
	}
	return out, nil
}

// InvalidateCache drops every analytics snapshot after a write. A failing
// cache only costs a recomputation, so errors are logged and swallowed.
func InvalidateCache(ctx context.Context, cache adapter.AnalyticsCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate analytics cache", "error", err)
	}
}
