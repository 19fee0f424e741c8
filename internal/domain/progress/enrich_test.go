package progress

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

func TestEnrich_EmptyDepartmentIsZeroFilled(t *testing.T) {
	analytics, err := Enrich(valueobject.DepartmentMarketing, nil, date(2025, time.May, 1))

	require.NoError(t, err)
	summary := analytics.Summary
	assert.Equal(t, valueobject.DepartmentMarketing, summary.Department)
	assert.Equal(t, 0, summary.TotalObjectives)
	assert.Equal(t, 0.0, summary.OverallProgressAverage)
	assert.Len(t, summary.ObjectivesByHealthStatus, 4)
	for _, h := range HealthStatuses() {
		count, ok := summary.ObjectivesByHealthStatus[h]
		assert.True(t, ok, string(h))
		assert.Equal(t, 0, count)
	}
	assert.Len(t, summary.CountByType, 3)
	for _, ot := range valueobject.ObjectiveTypes() {
		count, ok := summary.CountByType[ot]
		assert.True(t, ok, string(ot))
		assert.Equal(t, 0, count)
	}
	assert.Nil(t, summary.TopPerformer)
	assert.Nil(t, summary.WorstPerformer)
	assert.Empty(t, analytics.Objectives)
}

func TestEnrich_Department(t *testing.T) {
	asOf := date(2025, time.July, 2)

	sales := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)
	sales.ID = uuid.New()
	sales.Name = "Nuovi contratti"

	quality := newObjective(valueobject.ObjectiveTypeMaintenance, 10, false)
	quality.ID = uuid.New()
	quality.Name = "Qualità"

	lead := newObjective(valueobject.ObjectiveTypeLastMonth, 100, false)
	lead.ID = uuid.New()
	lead.SmartDescription = strings.Repeat("Generare lead qualificati ", 4)

	input := []entity.ObjectiveWithValues{
		{Objective: sales, Values: monthly(2025, 10, 10, 10, 10, 10, 10)},
		{Objective: quality, Values: monthly(2025, 12, 12)},
		{Objective: lead, Values: []entity.MonthlyValue{{Month: 6, Year: 2025, Value: 20}}},
	}

	analytics, err := Enrich(valueobject.DepartmentSales, input, asOf)
	require.NoError(t, err)
	require.Len(t, analytics.Objectives, 3)

	first := analytics.Objectives[0]
	assert.Equal(t, "Nuovi contratti", first.ObjectiveName)
	assert.Equal(t, 60.0, first.Result.ProgressPercent)
	assert.Equal(t, 50.0, first.ExpectedProgressPercent)
	assert.Equal(t, 10.0, first.VariancePercent)
	assert.Equal(t, HealthOnTrack, first.HealthStatus)
	assert.Equal(t, TrendStable, first.Trend)
	require.NotNil(t, first.LastUpdate)
	assert.Equal(t, MonthFigure{Month: "Giugno", Value: 10}, *first.LastUpdate)
	assert.Len(t, first.MonthlyValues, 6)

	second := analytics.Objectives[1]
	assert.Equal(t, 100.0, second.Result.ProgressPercent)
	assert.Equal(t, HealthExceeded, second.HealthStatus)
	assert.Equal(t, StatusAchieved, second.Result.Status)

	third := analytics.Objectives[2]
	assert.True(t, strings.HasSuffix(third.ObjectiveName, "..."))
	assert.Equal(t, 53, len([]rune(third.ObjectiveName)))
	assert.Equal(t, -30.0, third.VariancePercent)
	assert.Equal(t, HealthBehind, third.HealthStatus)

	summary := analytics.Summary
	assert.Equal(t, 3, summary.TotalObjectives)
	assert.Equal(t, 60.0, summary.OverallProgressAverage)
	assert.Equal(t, map[HealthStatus]int{HealthExceeded: 1, HealthOnTrack: 1, HealthAtRisk: 0, HealthBehind: 1}, summary.ObjectivesByHealthStatus)
	assert.Equal(t, map[valueobject.ObjectiveType]int{
		valueobject.ObjectiveTypeCumulative:  1,
		valueobject.ObjectiveTypeMaintenance: 1,
		valueobject.ObjectiveTypeLastMonth:   1,
	}, summary.CountByType)
	assert.Equal(t, 1, summary.ObjectivesByStatus[StatusAchieved])
	assert.Equal(t, 2, summary.ObjectivesByStatus[StatusBehind])
	require.NotNil(t, summary.TopPerformer)
	assert.Equal(t, quality.ID, summary.TopPerformer.ObjectiveID)
	require.NotNil(t, summary.WorstPerformer)
	assert.Equal(t, lead.ID, summary.WorstPerformer.ObjectiveID)
	assert.Equal(t, 20.0, summary.WorstPerformer.ProgressPercent)
}

func TestEnrich_PropagatesInvalidConfiguration(t *testing.T) {
	broken := newObjective("Settimanale", 10, false)

	_, err := Enrich(valueobject.DepartmentAgency, []entity.ObjectiveWithValues{{Objective: broken}}, date(2025, time.May, 1))

	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestHealthFor(t *testing.T) {
	tests := []struct {
		progress float64
		variance float64
		want     HealthStatus
	}{
		{100, -80, HealthExceeded},
		{50, 5, HealthOnTrack},
		{50, -9.99, HealthOnTrack},
		{50, -10, HealthAtRisk},
		{50, -24.99, HealthAtRisk},
		{50, -25, HealthBehind},
		{0, -100, HealthBehind},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HealthFor(tt.progress, tt.variance), "progress %v variance %v", tt.progress, tt.variance)
	}
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name   string
		values []entity.MonthlyValue
		want   Trend
	}{
		{"no values", nil, TrendStable},
		{"single value", monthly(2025, 4), TrendStable},
		{"rising", monthly(2025, 4, 5), TrendImproving},
		{"falling", monthly(2025, 5, 4), TrendDeclining},
		{"flat", monthly(2025, 4, 4), TrendStable},
		{
			"sorted across years regardless of input order",
			[]entity.MonthlyValue{{Month: 1, Year: 2025, Value: 5}, {Month: 12, Year: 2024, Value: 10}, {Month: 3, Year: 2024, Value: 50}},
			TrendDeclining,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendOf(tt.values))
		})
	}
}

func TestTrendOf_DoesNotReorderInput(t *testing.T) {
	values := []entity.MonthlyValue{{Month: 3, Year: 2025, Value: 1}, {Month: 1, Year: 2025, Value: 2}}

	TrendOf(values)

	assert.Equal(t, 3, values[0].Month)
}

func TestExpectedProgress(t *testing.T) {
	obj := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)

	assert.Equal(t, 0.0, ExpectedProgress(obj, date(2024, time.June, 1)))
	assert.Equal(t, 100.0, ExpectedProgress(obj, date(2026, time.June, 1)))

	sameDay := newObjective(valueobject.ObjectiveTypeCumulative, 100, false)
	sameDay.StartDate = date(2025, time.May, 5)
	sameDay.EndDate = date(2025, time.May, 5)
	assert.Equal(t, 0.0, ExpectedProgress(sameDay, date(2025, time.May, 4)))
	assert.Equal(t, 100.0, ExpectedProgress(sameDay, date(2025, time.May, 5)))
}
