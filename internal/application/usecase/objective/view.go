package objective

import (
	"time"

	"github.com/kpi-dashboard/backend/internal/application/usecase/analytics"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
)

// View is an objective with its values and freshly computed progress.
type View struct {
	Objective *entity.Objective
	Values    []entity.MonthlyValue
	Progress  progress.Result
	// TimeElapsedPercent is only set on period-scoped listings.
	TimeElapsedPercent *float64
}

func buildViews(items []entity.ObjectiveWithValues, asOf time.Time) ([]View, error) {
	views := make([]View, len(items))
	for i, item := range items {
		result, err := progress.Calculate(item.Objective, item.Values, asOf)
		if err != nil {
			return nil, analytics.WrapCalculationError(err)
		}
		views[i] = View{Objective: item.Objective, Values: item.Values, Progress: result}
	}
	return views, nil
}
