package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// Period is a calendar sub-range of one year. Both bounds are inclusive.
// StartMonth greater than EndMonth wraps around the year end (e.g. Nov-Feb).
type Period struct {
	StartMonth int
	EndMonth   int
	Year       int
}

// FullYear returns the January-December period of year.
func FullYear(year int) Period {
	return Period{StartMonth: 1, EndMonth: 12, Year: year}
}

// Validate checks the month bounds.
func (p Period) Validate() error {
	if p.StartMonth < 1 || p.StartMonth > 12 || p.EndMonth < 1 || p.EndMonth > 12 {
		return fmt.Errorf("%w: months must be between 1 and 12, got %d-%d", ErrInvalidConfiguration, p.StartMonth, p.EndMonth)
	}
	return nil
}

// Wraps reports whether the period crosses the year boundary.
func (p Period) Wraps() bool {
	return p.StartMonth > p.EndMonth
}

// Contains reports whether month/year falls inside the period.
func (p Period) Contains(month, year int) bool {
	if year != p.Year {
		return false
	}
	if p.Wraps() {
		return month >= p.StartMonth || month <= p.EndMonth
	}
	return month >= p.StartMonth && month <= p.EndMonth
}

// Label renders the period for display, e.g. "Anno 2025", "Marzo 2025"
// or "Gennaio - Giugno 2025".
func (p Period) Label() string {
	switch {
	case p.StartMonth == p.EndMonth:
		return fmt.Sprintf("%s %d", valueobject.MonthName(p.StartMonth), p.Year)
	case p.StartMonth == 1 && p.EndMonth == 12:
		return fmt.Sprintf("Anno %d", p.Year)
	default:
		return fmt.Sprintf("%s - %s %d", valueobject.MonthName(p.StartMonth), valueobject.MonthName(p.EndMonth), p.Year)
	}
}

// bounds returns the first and last day of the period. A wrapping period
// ends in the same year, so its window runs from StartMonth to December.
func (p Period) bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.StartMonth), 1, 0, 0, 0, 0, time.UTC)
	endMonth := p.EndMonth
	if p.Wraps() {
		endMonth = 12
	}
	// Day 0 of the following month is the last day of endMonth.
	end := time.Date(p.Year, time.Month(endMonth+1), 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// FilterByPeriod returns the values falling inside period, in input order.
func FilterByPeriod(values []entity.MonthlyValue, period Period) []entity.MonthlyValue {
	filtered := make([]entity.MonthlyValue, 0, len(values))
	for _, v := range values {
		if period.Contains(v.Month, v.Year) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// CurrentValueForPeriod aggregates every value inside period using the
// objective type's rule. There is no current-month cutoff.
func CurrentValueForPeriod(obj *entity.Objective, values []entity.MonthlyValue, period Period) (float64, error) {
	if err := Validate(obj); err != nil {
		return 0, err
	}
	if err := period.Validate(); err != nil {
		return 0, err
	}
	return aggregate(obj.Type, FilterByPeriod(values, period)), nil
}

// ProgressForPeriod returns the unrounded progress of obj over period.
//
// Higher-is-better objectives use the same capped formula as Calculate.
// Lower-is-better objectives above target use the linear form
// (target-current)/target instead of the overage decay used by Calculate.
func ProgressForPeriod(obj *entity.Objective, values []entity.MonthlyValue, period Period) (float64, error) {
	current, err := CurrentValueForPeriod(obj, values, period)
	if err != nil {
		return 0, err
	}
	return progressPercent(obj, current, reverseLinearProgress), nil
}

// CalculateForPeriod is the period-scoped variant of Calculate. Values are
// restricted to period; expiry and status are still evaluated at asOf.
func CalculateForPeriod(obj *entity.Objective, values []entity.MonthlyValue, period Period, asOf time.Time) (Result, error) {
	current, err := CurrentValueForPeriod(obj, values, period)
	if err != nil {
		return Result{}, err
	}
	progress := progressPercent(obj, current, reverseLinearProgress)
	return classify(obj, current, progress, asOf), nil
}

// reverseLinearProgress is the period-path formula for lower-is-better
// objectives. A zero target yields 0 instead of dividing by zero.
func reverseLinearProgress(target, current float64) float64 {
	if target == 0 {
		return 0
	}
	return math.Max(0, (target-current)/target*100)
}

// TimeElapsedForPeriod returns how much of the intersection between the
// objective window and period has elapsed at asOf, as a 0-100 percentage.
// An empty intersection counts as fully elapsed.
func TimeElapsedForPeriod(obj *entity.Objective, period Period, asOf time.Time) (float64, error) {
	if err := Validate(obj); err != nil {
		return 0, err
	}
	if err := period.Validate(); err != nil {
		return 0, err
	}

	periodStart, periodEnd := period.bounds()

	start := obj.StartDate
	if periodStart.After(start) {
		start = periodStart
	}
	end := obj.EndDate
	if periodEnd.Before(end) {
		end = periodEnd
	}
	current := asOf
	if end.Before(current) {
		current = end
	}

	total := end.Sub(start).Hours() / 24
	if total <= 0 {
		return 100, nil
	}
	elapsed := current.Sub(start).Hours() / 24
	return round2(clamp(elapsed/total*100, 0, 100)), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
