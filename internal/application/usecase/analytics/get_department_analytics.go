package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// GetDepartmentAnalyticsInput represents the input for department analytics.
type GetDepartmentAnalyticsInput struct {
	Department valueobject.Department
}

// GetDepartmentAnalyticsOutput represents the output of department analytics.
type GetDepartmentAnalyticsOutput struct {
	Analytics *progress.DepartmentAnalytics
	Cached    bool
}

// GetDepartmentAnalyticsUseCase enriches a department's objectives.
type GetDepartmentAnalyticsUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
	cache         adapter.AnalyticsCache
	clock         adapter.Clock
}

// NewGetDepartmentAnalyticsUseCase creates a new GetDepartmentAnalyticsUseCase instance.
func NewGetDepartmentAnalyticsUseCase(
	objectiveRepo adapter.ObjectiveRepository,
	valueRepo adapter.ValueRepository,
	cache adapter.AnalyticsCache,
	clock adapter.Clock,
) *GetDepartmentAnalyticsUseCase {
	return &GetDepartmentAnalyticsUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
		cache:         cache,
		clock:         clock,
	}
}

// Execute returns the analytics of the department, served from the cache
// when a snapshot for today's data version exists.
func (uc *GetDepartmentAnalyticsUseCase) Execute(ctx context.Context, input GetDepartmentAnalyticsInput) (*GetDepartmentAnalyticsOutput, error) {
	if !input.Department.IsValid() {
		return nil, domainerror.NewObjectiveError(
			domainerror.ErrCodeInvalidDepartment,
			"invalid department",
			domainerror.ErrInvalidDepartment,
		)
	}

	asOf := uc.clock.Now()

	// The version is read before loading so that a write committed during
	// the load retires the snapshot stored below.
	version, cacheable := uc.cacheVersion(ctx, input.Department)
	if cacheable {
		cached, err := uc.cache.Get(ctx, input.Department, asOf, version)
		if err != nil {
			slog.Warn("analytics cache read failed", "department", input.Department, "error", err)
		} else if cached != nil {
			return &GetDepartmentAnalyticsOutput{Analytics: cached, Cached: true}, nil
		}
	}

	objectives, err := uc.objectiveRepo.FindByDepartment(ctx, input.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	withValues, err := LoadValues(ctx, uc.valueRepo, objectives)
	if err != nil {
		return nil, err
	}

	result, err := progress.Enrich(input.Department, withValues, asOf)
	if err != nil {
		return nil, WrapCalculationError(err)
	}

	if cacheable {
		if err := uc.cache.Set(ctx, input.Department, asOf, version, result); err != nil {
			slog.Warn("analytics cache write failed", "department", input.Department, "error", err)
		}
	}

	return &GetDepartmentAnalyticsOutput{Analytics: result}, nil
}

func (uc *GetDepartmentAnalyticsUseCase) cacheVersion(ctx context.Context, department valueobject.Department) (int64, bool) {
	if uc.cache == nil {
		return 0, false
	}
	version, err := uc.cache.Version(ctx)
	if err != nil {
		slog.Warn("analytics cache version unavailable", "department", department, "error", err)
		return 0, false
	}
	return version, true
}

// WrapCalculationError turns a corrupt stored objective into a coded error.
func WrapCalculationError(err error) error {
	if errors.Is(err, progress.ErrInvalidConfiguration) {
		return domainerror.NewObjectiveError(
			domainerror.ErrCodeInvalidConfiguration,
			"objective configuration is invalid",
			err,
		)
	}
	return fmt.Errorf("failed to compute analytics: %w", err)
}
