package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newObjective(objectiveType valueobject.ObjectiveType, target float64, reverse bool) *entity.Objective {
	return &entity.Objective{
		Department:       valueobject.DepartmentSales,
		SmartDescription: "test objective",
		Type:             objectiveType,
		Target:           target,
		NumberFormat:     valueobject.NumberFormatNumber,
		StartDate:        date(2025, time.January, 1),
		EndDate:          date(2025, time.December, 31),
		ReverseLogic:     reverse,
	}
}

func monthly(year int, figures ...float64) []entity.MonthlyValue {
	values := make([]entity.MonthlyValue, len(figures))
	for i, f := range figures {
		values[i] = entity.MonthlyValue{Month: i + 1, Year: year, Value: f}
	}
	return values
}

func TestCalculate_Scenarios(t *testing.T) {
	t.Run("cumulative normal logic sums months up to asOf", func(t *testing.T) {
		obj := newObjective(valueobject.ObjectiveTypeCumulative, 1000, false)

		result, err := Calculate(obj, monthly(2025, 50, 75, 80), date(2025, time.March, 31))

		require.NoError(t, err)
		assert.Equal(t, 205.0, result.CurrentValue)
		assert.Equal(t, 20.5, result.ProgressPercent)
		assert.False(t, result.IsOnTrack)
		assert.Equal(t, StatusBehind, result.Status)
	})

	t.Run("maintenance reverse logic above target decays with overage", func(t *testing.T) {
		obj := newObjective(valueobject.ObjectiveTypeMaintenance, 5, true)

		result, err := Calculate(obj, monthly(2025, 6.3, 6.1, 5.9), date(2025, time.March, 31))

		require.NoError(t, err)
		assert.Equal(t, 6.1, result.CurrentValue)
		assert.Equal(t, 56.0, result.ProgressPercent)
		assert.Less(t, result.ProgressPercent, 100.0)
		assert.Equal(t, StatusBehind, result.Status)
	})

	t.Run("expired and achieved is completed", func(t *testing.T) {
		obj := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)
		obj.StartDate = date(2024, time.January, 1)
		obj.EndDate = date(2024, time.December, 31)

		result, err := Calculate(obj, monthly(2025, 60, 50), date(2025, time.March, 31))

		require.NoError(t, err)
		assert.True(t, result.IsExpired)
		assert.Equal(t, 100.0, result.ProgressPercent)
		assert.Equal(t, StatusCompleted, result.Status)
		assert.Equal(t, -90, result.DaysUntilExpiry)
	})

	t.Run("active at 72 percent is in progress", func(t *testing.T) {
		obj := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)

		result, err := Calculate(obj, monthly(2025, 72), date(2025, time.March, 1))

		require.NoError(t, err)
		assert.False(t, result.IsExpired)
		assert.Equal(t, 72.0, result.ProgressPercent)
		assert.True(t, result.IsOnTrack)
		assert.Equal(t, StatusInProgress, result.Status)
	})

	t.Run("expired below target is not achieved", func(t *testing.T) {
		obj := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)
		obj.EndDate = date(2025, time.February, 28)

		result, err := Calculate(obj, monthly(2025, 30, 30), date(2025, time.March, 15))

		require.NoError(t, err)
		assert.Equal(t, StatusNotAchieved, result.Status)
	})

	t.Run("active above target is achieved", func(t *testing.T) {
		obj := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)

		result, err := Calculate(obj, monthly(2025, 80, 80), date(2025, time.March, 15))

		require.NoError(t, err)
		assert.Equal(t, 100.0, result.ProgressPercent)
		assert.Equal(t, 160.0, result.CurrentValue)
		assert.Equal(t, StatusAchieved, result.Status)
	})
}

func TestCalculate_CurrentValue(t *testing.T) {
	asOf := date(2025, time.March, 10)
	values := append(monthly(2025, 10, 20, 30, 40, 50, 60), monthly(2024, 1000, 1000)...)

	tests := []struct {
		name          string
		objectiveType valueobject.ObjectiveType
		values        []entity.MonthlyValue
		want          float64
	}{
		{"cumulative ignores later months and other years", valueobject.ObjectiveTypeCumulative, values, 60},
		{"maintenance averages months up to asOf", valueobject.ObjectiveTypeMaintenance, values, 20},
		{"last month takes greatest month of the year", valueobject.ObjectiveTypeLastMonth, values, 60},
		{"cumulative without rows is zero", valueobject.ObjectiveTypeCumulative, nil, 0},
		{"maintenance without rows is zero", valueobject.ObjectiveTypeMaintenance, monthly(2024, 5), 0},
		{"last month without rows is zero", valueobject.ObjectiveTypeLastMonth, nil, 0},
		{
			"last month does not depend on input order",
			valueobject.ObjectiveTypeLastMonth,
			[]entity.MonthlyValue{{Month: 9, Year: 2025, Value: 9}, {Month: 2, Year: 2025, Value: 2}, {Month: 11, Year: 2025, Value: 11}},
			11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObjective(tt.objectiveType, 100, false)

			result, err := Calculate(obj, tt.values, asOf)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.CurrentValue)
		})
	}
}

func TestCalculate_ProgressRules(t *testing.T) {
	asOf := date(2025, time.January, 31)

	tests := []struct {
		name    string
		target  float64
		reverse bool
		value   float64
		want    float64
	}{
		{"zero target with positive value", 0, false, 3, 100},
		{"zero target with zero value", 0, false, 0, 0},
		{"zero target with negative value", 0, false, -3, 0},
		{"capped at 100", 50, false, 75, 100},
		{"reverse at target", 5, true, 5, 100},
		{"reverse below target", 5, true, 2, 100},
		{"reverse negative target below target", -10, true, -12, 100},
		{"reverse negative target above target", -10, true, -7.5, 50},
		{"reverse overage beyond 50 percent floors at zero", 10, true, 20, 0},
		{"reverse zero target above target", 0, true, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObjective(valueobject.ObjectiveTypeLastMonth, tt.target, tt.reverse)

			result, err := Calculate(obj, monthly(2025, tt.value), asOf)

			require.NoError(t, err)
			assert.Equal(t, tt.want, result.ProgressPercent)
			assert.Equal(t, result.ProgressPercent >= OnTrackThreshold, result.IsOnTrack)
		})
	}
}

func TestCalculate_ProgressIsMonotonicForPositiveTargets(t *testing.T) {
	obj := newObjective(valueobject.ObjectiveTypeLastMonth, 250, false)
	asOf := date(2025, time.June, 15)

	previous := -1.0
	for v := 0.0; v <= 400; v += 12.5 {
		result, err := Calculate(obj, monthly(2025, v), asOf)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, result.ProgressPercent, previous, "value %v", v)
		assert.LessOrEqual(t, result.ProgressPercent, 100.0)
		previous = result.ProgressPercent
	}
	assert.Equal(t, 100.0, previous)
}

func TestCalculate_ReverseAtOrBelowTargetIsAlwaysComplete(t *testing.T) {
	for _, target := range []float64{-50, -1, 0, 0.5, 5, 1000} {
		for _, delta := range []float64{0, 0.01, 1, 100} {
			obj := newObjective(valueobject.ObjectiveTypeMaintenance, target, true)

			result, err := Calculate(obj, monthly(2025, target-delta), date(2025, time.January, 20))

			require.NoError(t, err)
			assert.Equal(t, 100.0, result.ProgressPercent, "target %v value %v", target, target-delta)
		}
	}
}

func TestCalculate_Expiry(t *testing.T) {
	end := date(2025, time.June, 30)

	tests := []struct {
		name        string
		asOf        time.Time
		wantExpired bool
		wantDays    int
	}{
		{"two days before", date(2025, time.June, 28), false, 2},
		{"partial day rounds up", end.Add(-30 * time.Hour), false, 2},
		{"exactly at end date", end, false, 0},
		{"one nanosecond after", end.Add(time.Nanosecond), true, 0},
		{"later the same day", end.Add(10 * time.Hour), true, 0},
		{"two days after", date(2025, time.July, 2), true, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)
			obj.EndDate = end

			result, err := Calculate(obj, nil, tt.asOf)

			require.NoError(t, err)
			assert.Equal(t, tt.wantExpired, result.IsExpired)
			assert.Equal(t, end.Before(tt.asOf), result.IsExpired)
			assert.Equal(t, tt.wantDays, result.DaysUntilExpiry)
		})
	}
}

func TestStatusFor_IsTotal(t *testing.T) {
	progresses := []float64{0, 35, 69.99, 70, 99.99, 100}

	for _, expired := range []bool{false, true} {
		for _, p := range progresses {
			onTrack := p >= OnTrackThreshold
			t.Run(fmt.Sprintf("expired=%v progress=%v", expired, p), func(t *testing.T) {
				var want Status
				switch {
				case expired && p >= 100:
					want = StatusCompleted
				case expired:
					want = StatusNotAchieved
				case p >= 100:
					want = StatusAchieved
				case onTrack:
					want = StatusInProgress
				default:
					want = StatusBehind
				}

				got := statusFor(expired, onTrack, p)

				assert.Equal(t, want, got)
				assert.Contains(t, Statuses(), got)
			})
		}
	}
}

func TestCalculate_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *entity.Objective)
	}{
		{"unknown type", func(o *entity.Objective) { o.Type = "Trimestrale" }},
		{"missing start date", func(o *entity.Objective) { o.StartDate = time.Time{} }},
		{"start after end", func(o *entity.Objective) { o.StartDate = date(2026, time.January, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)
			tt.mutate(obj)

			_, err := Calculate(obj, nil, date(2025, time.March, 1))

			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}

	_, err := Calculate(nil, nil, date(2025, time.March, 1))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestCalculate_RoundsToTwoDecimals(t *testing.T) {
	obj := newObjective(valueobject.ObjectiveTypeMaintenance, 3, false)

	result, err := Calculate(obj, monthly(2025, 1, 1, 0), date(2025, time.March, 31))

	require.NoError(t, err)
	assert.Equal(t, 0.67, result.CurrentValue)
	assert.Equal(t, 22.22, result.ProgressPercent)
}
