// Package seed loads demonstration objectives from embedded fixtures.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// DefaultScenario is used when no scenario is requested.
const DefaultScenario = "default"

// SeedInput represents the input for seeding.
type SeedInput struct {
	Scenario string
}

// SeedOutput represents the output of seeding.
type SeedOutput struct {
	Scenario   string
	Cleared    bool
	Objectives int
	Values     int
}

// SeedUseCase writes a fixture scenario into the database.
type SeedUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
	cache         adapter.AnalyticsCache
	clock         adapter.Clock
}

// NewSeedUseCase creates a new SeedUseCase instance.
func NewSeedUseCase(
	objectiveRepo adapter.ObjectiveRepository,
	valueRepo adapter.ValueRepository,
	cache adapter.AnalyticsCache,
	clock adapter.Clock,
) *SeedUseCase {
	return &SeedUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
		cache:         cache,
		clock:         clock,
	}
}

// Execute loads the scenario. Scenarios marked clear wipe every objective first.
func (uc *SeedUseCase) Execute(ctx context.Context, input SeedInput) (*SeedOutput, error) {
	name := input.Scenario
	if name == "" {
		name = DefaultScenario
	}

	fixture, err := loadScenario(name)
	if err != nil {
		return nil, domainerror.NewSeedError(
			domainerror.ErrCodeUnknownScenario,
			fmt.Sprintf("unknown scenario %q", name),
			domainerror.ErrUnknownScenario,
		)
	}

	now := uc.clock.Now()
	objectives, values, err := build(fixture, now)
	if err != nil {
		return nil, domainerror.NewSeedError(domainerror.ErrCodeInvalidFixture, err.Error(), domainerror.ErrInvalidFixture)
	}

	if fixture.Clear {
		if err := uc.objectiveRepo.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("failed to clear objectives: %w", err)
		}
	}

	if err := uc.assignOrder(ctx, fixture, objectives); err != nil {
		return nil, err
	}

	if err := uc.objectiveRepo.CreateMany(ctx, objectives); err != nil {
		return nil, fmt.Errorf("failed to create objectives: %w", err)
	}

	count := 0
	for i, obj := range objectives {
		for _, v := range values[i] {
			v.ObjectiveID = obj.ID
			if err := uc.valueRepo.Upsert(ctx, &v); err != nil {
				return nil, fmt.Errorf("failed to store value: %w", err)
			}
			count++
		}
	}
	analytics.InvalidateCache(ctx, uc.cache)

	slog.Info("database seeded", "scenario", name, "objectives", len(objectives), "values", count)

	return &SeedOutput{
		Scenario:   name,
		Cleared:    fixture.Clear,
		Objectives: len(objectives),
		Values:     count,
	}, nil
}

// assignOrder appends fixture objectives without an explicit order index
// after the objectives already stored in their department.
func (uc *SeedUseCase) assignOrder(ctx context.Context, fixture *scenario, objectives []*entity.Objective) error {
	next := make(map[valueobject.Department]int)
	for i, f := range fixture.Objectives {
		if f.OrderIndex != nil {
			objectives[i].OrderIndex = *f.OrderIndex
			continue
		}
		idx, ok := next[f.Department]
		if !ok {
			var err error
			idx, err = uc.objectiveRepo.NextOrderIndex(ctx, f.Department)
			if err != nil {
				return fmt.Errorf("failed to compute order index: %w", err)
			}
		}
		objectives[i].OrderIndex = idx
		next[f.Department] = idx + 1
	}
	return nil
}

func build(fixture *scenario, now time.Time) ([]*entity.Objective, [][]entity.MonthlyValue, error) {
	objectives := make([]*entity.Objective, 0, len(fixture.Objectives))
	values := make([][]entity.MonthlyValue, 0, len(fixture.Objectives))

	for i, f := range fixture.Objectives {
		start, err := f.Start.resolve(now)
		if err != nil {
			return nil, nil, fmt.Errorf("objective %d: %w", i+1, err)
		}
		end, err := f.End.resolve(now)
		if err != nil {
			return nil, nil, fmt.Errorf("objective %d: %w", i+1, err)
		}

		obj := entity.NewObjective(f.Department, f.Name, f.Smart, f.Type, f.Target, f.NumberFormat, start, end, f.ReverseLogic, now)
		if !obj.Department.IsValid() {
			return nil, nil, fmt.Errorf("objective %d: %w", i+1, domainerror.ErrInvalidDepartment)
		}
		if err := progress.Validate(obj); err != nil {
			return nil, nil, fmt.Errorf("objective %d: %w", i+1, err)
		}

		monthly := make([]entity.MonthlyValue, 0, len(f.Values))
		for _, v := range f.Values {
			month, year, err := v.resolve(now)
			if err != nil {
				return nil, nil, fmt.Errorf("objective %d: %w", i+1, err)
			}
			monthly = append(monthly, entity.MonthlyValue{Month: month, Year: year, Value: v.Value, UpdatedAt: now})
		}

		objectives = append(objectives, obj)
		values = append(values, monthly)
	}
	return objectives, values, nil
}
