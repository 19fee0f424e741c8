// Package progress computes objective progress, status labels and
// department analytics from objective configuration and monthly values.
//
// Every function in this package is pure: the reference instant is always
// passed in as asOf and nothing reads the wall clock or performs I/O.
package progress

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// ErrInvalidConfiguration is returned when an objective cannot be evaluated,
// e.g. an unknown type or a malformed date window.
var ErrInvalidConfiguration = errors.New("invalid objective configuration")

// OnTrackThreshold is the minimum progress percentage considered on track.
const OnTrackThreshold = 70.0

// maxOverageRatio is the overage, as a fraction of |target|, at which a
// reverse-logic objective reaches zero progress.
const maxOverageRatio = 0.5

// Status is the primary label of an objective.
type Status string

const (
	StatusCompleted   Status = "Completed"
	StatusNotAchieved Status = "Not achieved"
	StatusAchieved    Status = "Achieved"
	StatusInProgress  Status = "In progress"
	StatusBehind      Status = "Behind"
)

// Statuses returns every status label.
func Statuses() []Status {
	return []Status{StatusCompleted, StatusNotAchieved, StatusAchieved, StatusInProgress, StatusBehind}
}

// Result is the computed progress of one objective. It is never persisted.
type Result struct {
	CurrentValue    float64
	ProgressPercent float64
	Status          Status
	IsOnTrack       bool
	IsExpired       bool
	DaysUntilExpiry int
}

// Calculate computes the progress of obj as of asOf using the values
// recorded in asOf's calendar year.
//
// Cumulative and maintenance objectives only consider months up to asOf's
// month; last-month objectives take the latest recorded month of the year.
func Calculate(obj *entity.Objective, values []entity.MonthlyValue, asOf time.Time) (Result, error) {
	if err := Validate(obj); err != nil {
		return Result{}, err
	}

	current := aggregate(obj.Type, yearToDate(obj.Type, values, asOf))
	progress := progressPercent(obj, current, reverseOverageProgress)

	return classify(obj, current, progress, asOf), nil
}

// Validate checks that obj can be evaluated by the calculator.
func Validate(obj *entity.Objective) error {
	if obj == nil {
		return fmt.Errorf("%w: objective is nil", ErrInvalidConfiguration)
	}
	if !obj.Type.IsValid() {
		return fmt.Errorf("%w: unknown objective type %q", ErrInvalidConfiguration, obj.Type)
	}
	if obj.StartDate.IsZero() || obj.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidConfiguration)
	}
	if obj.StartDate.After(obj.EndDate) {
		return fmt.Errorf("%w: start date %s is after end date %s", ErrInvalidConfiguration,
			obj.StartDate.Format(entity.DateLayout), obj.EndDate.Format(entity.DateLayout))
	}
	if math.IsNaN(obj.Target) || math.IsInf(obj.Target, 0) {
		return fmt.Errorf("%w: target must be a finite number", ErrInvalidConfiguration)
	}
	return nil
}

// yearToDate keeps the values of asOf's year. The month cutoff does not
// apply to last-month objectives.
func yearToDate(objectiveType valueobject.ObjectiveType, values []entity.MonthlyValue, asOf time.Time) []entity.MonthlyValue {
	year, month := asOf.Year(), int(asOf.Month())

	filtered := make([]entity.MonthlyValue, 0, len(values))
	for _, v := range values {
		if v.Year != year {
			continue
		}
		if objectiveType != valueobject.ObjectiveTypeLastMonth && v.Month > month {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered
}

// aggregate folds already-filtered values into a current value.
func aggregate(objectiveType valueobject.ObjectiveType, values []entity.MonthlyValue) float64 {
	if len(values) == 0 {
		return 0
	}

	switch objectiveType {
	case valueobject.ObjectiveTypeCumulative:
		return sum(values)
	case valueobject.ObjectiveTypeMaintenance:
		return sum(values) / float64(len(values))
	case valueobject.ObjectiveTypeLastMonth:
		latest := values[0]
		for _, v := range values[1:] {
			if v.Month > latest.Month {
				latest = v
			}
		}
		return latest.Value
	}
	return 0
}

func sum(values []entity.MonthlyValue) float64 {
	var total float64
	for _, v := range values {
		total += v.Value
	}
	return total
}

// reverseFormula computes progress for a lower-is-better objective whose
// current value is above target.
type reverseFormula func(target, current float64) float64

func progressPercent(obj *entity.Objective, current float64, reverse reverseFormula) float64 {
	if obj.ReverseLogic {
		if current <= obj.Target {
			return 100
		}
		return reverse(obj.Target, current)
	}
	return normalProgress(obj.Target, current)
}

func normalProgress(target, current float64) float64 {
	if target == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return math.Min(100, current/target*100)
}

// reverseOverageProgress decays linearly from 100 at the target to 0 at
// target + 50% of |target|.
func reverseOverageProgress(target, current float64) float64 {
	maxOverage := math.Abs(target) * maxOverageRatio
	if maxOverage == 0 {
		return 0
	}
	overage := current - target
	return math.Max(0, 100-overage/maxOverage*100)
}

// classify applies the expiry rules and the status decision table.
func classify(obj *entity.Objective, current, progress float64, asOf time.Time) Result {
	isExpired := obj.EndDate.Before(asOf)
	isOnTrack := progress >= OnTrackThreshold

	return Result{
		CurrentValue:    round2(current),
		ProgressPercent: round2(progress),
		Status:          statusFor(isExpired, isOnTrack, progress),
		IsOnTrack:       isOnTrack,
		IsExpired:       isExpired,
		DaysUntilExpiry: daysUntil(obj.EndDate, asOf),
	}
}

func statusFor(isExpired, isOnTrack bool, progress float64) Status {
	switch {
	case isExpired && progress >= 100:
		return StatusCompleted
	case isExpired:
		return StatusNotAchieved
	case progress >= 100:
		return StatusAchieved
	case isOnTrack:
		return StatusInProgress
	default:
		return StatusBehind
	}
}

// daysUntil returns the whole days from asOf to end, rounded up.
// The result is negative once end has passed.
func daysUntil(end, asOf time.Time) int {
	return int(math.Ceil(end.Sub(asOf).Hours() / 24))
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
