package objective

import (
	"context"
	"fmt"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// ListDepartmentObjectivesInput represents the input for a department listing.
type ListDepartmentObjectivesInput struct {
	Department valueobject.Department
	Period     *progress.Period // Optional, switches to period-scoped progress; zero Year means the current year
}

// ListDepartmentObjectivesOutput represents the output of a department listing.
type ListDepartmentObjectivesOutput struct {
	Objectives  []View
	PeriodLabel string
}

// ListDepartmentObjectivesUseCase lists a department's objectives.
type ListDepartmentObjectivesUseCase struct {
	objectiveRepo adapter.ObjectiveRepository
	valueRepo     adapter.ValueRepository
	clock         adapter.Clock
}

// NewListDepartmentObjectivesUseCase creates a new ListDepartmentObjectivesUseCase instance.
func NewListDepartmentObjectivesUseCase(objectiveRepo adapter.ObjectiveRepository, valueRepo adapter.ValueRepository, clock adapter.Clock) *ListDepartmentObjectivesUseCase {
	return &ListDepartmentObjectivesUseCase{
		objectiveRepo: objectiveRepo,
		valueRepo:     valueRepo,
		clock:         clock,
	}
}

// Execute lists the department. Without a period progress is year-to-date;
// with one, values are restricted to the period and the period formulas apply.
func (uc *ListDepartmentObjectivesUseCase) Execute(ctx context.Context, input ListDepartmentObjectivesInput) (*ListDepartmentObjectivesOutput, error) {
	if !input.Department.IsValid() {
		return nil, domainerror.NewObjectiveError(domainerror.ErrCodeInvalidDepartment, "invalid department", domainerror.ErrInvalidDepartment)
	}
	if input.Period != nil {
		if err := input.Period.Validate(); err != nil {
			return nil, domainerror.NewObjectiveError(domainerror.ErrCodeInvalidPeriod, "startMonth and endMonth must be between 1 and 12", domainerror.ErrInvalidPeriod)
		}
	}

	objectives, err := uc.objectiveRepo.FindByDepartment(ctx, input.Department)
	if err != nil {
		return nil, fmt.Errorf("failed to list objectives: %w", err)
	}
	items, err := analytics.LoadValues(ctx, uc.valueRepo, objectives)
	if err != nil {
		return nil, err
	}

	asOf := uc.clock.Now()
	if input.Period == nil {
		views, err := buildViews(items, asOf)
		if err != nil {
			return nil, err
		}
		return &ListDepartmentObjectivesOutput{Objectives: views}, nil
	}

	period := *input.Period
	if period.Year == 0 {
		period.Year = asOf.Year()
	}
	views := make([]View, len(items))
	for i, item := range items {
		result, err := progress.CalculateForPeriod(item.Objective, item.Values, period, asOf)
		if err != nil {
			return nil, analytics.WrapCalculationError(err)
		}
		elapsed, err := progress.TimeElapsedForPeriod(item.Objective, period, asOf)
		if err != nil {
			return nil, analytics.WrapCalculationError(err)
		}
		views[i] = View{
			Objective:          item.Objective,
			Values:             progress.FilterByPeriod(item.Values, period),
			Progress:           result,
			TimeElapsedPercent: &elapsed,
		}
	}

	return &ListDepartmentObjectivesOutput{Objectives: views, PeriodLabel: period.Label()}, nil
}
