package progress

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// HealthStatus compares actual progress against time-based expected progress.
// It is independent of Status.
type HealthStatus string

const (
	HealthExceeded HealthStatus = "Exceeded"
	HealthOnTrack  HealthStatus = "On Track"
	HealthAtRisk   HealthStatus = "At Risk"
	HealthBehind   HealthStatus = "Behind"
)

// HealthStatuses returns every health status.
func HealthStatuses() []HealthStatus {
	return []HealthStatus{HealthExceeded, HealthOnTrack, HealthAtRisk, HealthBehind}
}

// Trend is the direction of the two most recent monthly values.
type Trend string

const (
	TrendImproving Trend = "Improving"
	TrendDeclining Trend = "Declining"
	TrendStable    Trend = "Stable"
)

// MonthFigure is a value labelled with its Italian month name.
type MonthFigure struct {
	Month string
	Value float64
}

// ObjectiveAnalytics is the enriched view of one objective.
type ObjectiveAnalytics struct {
	Objective               *entity.Objective
	ObjectiveName           string
	Result                  Result
	ExpectedProgressPercent float64
	VariancePercent         float64
	TimeElapsedPercent      float64
	HealthStatus            HealthStatus
	Trend                   Trend
	LastUpdate              *MonthFigure
	MonthlyValues           []MonthFigure
}

// Performer identifies the objective with the best or worst progress.
type Performer struct {
	ObjectiveID     uuid.UUID
	Name            string
	ProgressPercent float64
}

// DepartmentSummary aggregates the analytics of a department.
// Both count maps always contain every key, zero-filled.
type DepartmentSummary struct {
	Department               valueobject.Department
	TotalObjectives          int
	OverallProgressAverage   float64
	ObjectivesByHealthStatus map[HealthStatus]int
	ObjectivesByStatus       map[Status]int
	CountByType              map[valueobject.ObjectiveType]int
	TopPerformer             *Performer
	WorstPerformer           *Performer
}

// DepartmentAnalytics is the output of Enrich.
type DepartmentAnalytics struct {
	Summary    DepartmentSummary
	Objectives []ObjectiveAnalytics
	AsOf       time.Time
}

// Enrich computes per-objective analytics and the department summary.
// Objectives keep their input order.
func Enrich(department valueobject.Department, objectives []entity.ObjectiveWithValues, asOf time.Time) (*DepartmentAnalytics, error) {
	enriched := make([]ObjectiveAnalytics, 0, len(objectives))
	for _, item := range objectives {
		analytics, err := EnrichObjective(item.Objective, item.Values, asOf)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, analytics)
	}

	return &DepartmentAnalytics{
		Summary:    summarize(department, enriched),
		Objectives: enriched,
		AsOf:       asOf,
	}, nil
}

// EnrichObjective computes the analytics of a single objective.
func EnrichObjective(obj *entity.Objective, values []entity.MonthlyValue, asOf time.Time) (ObjectiveAnalytics, error) {
	result, err := Calculate(obj, values, asOf)
	if err != nil {
		return ObjectiveAnalytics{}, err
	}

	expected := ExpectedProgress(obj, asOf)
	variance := result.ProgressPercent - expected

	return ObjectiveAnalytics{
		Objective:               obj,
		ObjectiveName:           obj.DisplayName(),
		Result:                  result,
		ExpectedProgressPercent: expected,
		VariancePercent:         round2(variance),
		TimeElapsedPercent:      expected,
		HealthStatus:            HealthFor(result.ProgressPercent, variance),
		Trend:                   TrendOf(values),
		LastUpdate:              lastUpdate(values, asOf.Year()),
		MonthlyValues:           monthlyFigures(values, asOf.Year()),
	}, nil
}

// ExpectedProgress is the share of the objective window elapsed at asOf,
// clamped to 0-100. A zero-length window is 0 before its end and 100 after.
func ExpectedProgress(obj *entity.Objective, asOf time.Time) float64 {
	total := obj.EndDate.Sub(obj.StartDate).Hours() / 24
	if total <= 0 {
		if asOf.Before(obj.EndDate) {
			return 0
		}
		return 100
	}
	elapsed := asOf.Sub(obj.StartDate).Hours() / 24
	return round2(clamp(elapsed/total*100, 0, 100))
}

// HealthFor classifies progress against its variance from expected progress.
func HealthFor(progress, variance float64) HealthStatus {
	switch {
	case progress >= 100:
		return HealthExceeded
	case variance > -10:
		return HealthOnTrack
	case variance > -25:
		return HealthAtRisk
	default:
		return HealthBehind
	}
}

// TrendOf compares the two chronologically latest values.
func TrendOf(values []entity.MonthlyValue) Trend {
	if len(values) < 2 {
		return TrendStable
	}

	sorted := make([]entity.MonthlyValue, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	latest := sorted[len(sorted)-1].Value
	previous := sorted[len(sorted)-2].Value
	switch {
	case latest > previous:
		return TrendImproving
	case latest < previous:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func lastUpdate(values []entity.MonthlyValue, year int) *MonthFigure {
	var latest *entity.MonthlyValue
	for i := range values {
		v := &values[i]
		if v.Year != year {
			continue
		}
		if latest == nil || v.Month > latest.Month {
			latest = v
		}
	}
	if latest == nil {
		return nil
	}
	return &MonthFigure{Month: valueobject.MonthName(latest.Month), Value: latest.Value}
}

func monthlyFigures(values []entity.MonthlyValue, year int) []MonthFigure {
	current := make([]entity.MonthlyValue, 0, len(values))
	for _, v := range values {
		if v.Year == year {
			current = append(current, v)
		}
	}
	sort.SliceStable(current, func(i, j int) bool {
		return current[i].Month < current[j].Month
	})

	figures := make([]MonthFigure, len(current))
	for i, v := range current {
		figures[i] = MonthFigure{Month: valueobject.MonthName(v.Month), Value: v.Value}
	}
	return figures
}

func summarize(department valueobject.Department, objectives []ObjectiveAnalytics) DepartmentSummary {
	summary := DepartmentSummary{
		Department:               department,
		TotalObjectives:          len(objectives),
		ObjectivesByHealthStatus: make(map[HealthStatus]int, 4),
		ObjectivesByStatus:       make(map[Status]int, 5),
		CountByType:              make(map[valueobject.ObjectiveType]int, 3),
	}
	for _, h := range HealthStatuses() {
		summary.ObjectivesByHealthStatus[h] = 0
	}
	for _, s := range Statuses() {
		summary.ObjectivesByStatus[s] = 0
	}
	for _, t := range valueobject.ObjectiveTypes() {
		summary.CountByType[t] = 0
	}

	if len(objectives) == 0 {
		return summary
	}

	var total float64
	for i := range objectives {
		o := &objectives[i]
		total += o.Result.ProgressPercent
		summary.ObjectivesByHealthStatus[o.HealthStatus]++
		summary.ObjectivesByStatus[o.Result.Status]++
		summary.CountByType[o.Objective.Type]++

		if summary.TopPerformer == nil || o.Result.ProgressPercent > summary.TopPerformer.ProgressPercent {
			summary.TopPerformer = performerOf(o)
		}
		if summary.WorstPerformer == nil || o.Result.ProgressPercent < summary.WorstPerformer.ProgressPercent {
			summary.WorstPerformer = performerOf(o)
		}
	}
	summary.OverallProgressAverage = round2(total / float64(len(objectives)))

	return summary
}

func performerOf(o *ObjectiveAnalytics) *Performer {
	return &Performer{
		ObjectiveID:     o.Objective.ID,
		Name:            o.ObjectiveName,
		ProgressPercent: o.Result.ProgressPercent,
	}
}
