// Package objective contains objective-related use cases.
package objective

import (
	"math"
	"strings"
	"time"

	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// Fields carries every user-editable attribute of an objective.
type Fields struct {
	Department       valueobject.Department
	Name             string
	SmartDescription string
	Type             valueobject.ObjectiveType
	Target           float64
	NumberFormat     valueobject.NumberFormat
	StartDate        time.Time
	EndDate          time.Time
	ReverseLogic     bool
}

// validate reports the first invalid field as an ObjectiveError.
func (f Fields) validate() error {
	if !f.Department.IsValid() {
		return domainerror.NewObjectiveError(domainerror.ErrCodeInvalidDepartment, "invalid department", domainerror.ErrInvalidDepartment)
	}
	if strings.TrimSpace(f.SmartDescription) == "" {
		return domainerror.NewObjectiveError(domainerror.ErrCodeMissingObjectiveField, "missing required field: objective_smart", nil)
	}
	if f.StartDate.IsZero() || f.EndDate.IsZero() {
		return domainerror.NewObjectiveError(domainerror.ErrCodeMissingObjectiveField, "missing required field: start_date and end_date", nil)
	}
	if math.IsNaN(f.Target) || math.IsInf(f.Target, 0) {
		return domainerror.NewObjectiveError(domainerror.ErrCodeMissingObjectiveField, "target must be a finite number", nil)
	}
	return validateShape(f.Type, f.NumberFormat, f.StartDate, f.EndDate)
}

// validateShape checks the attributes an update can also change.
func validateShape(objectiveType valueobject.ObjectiveType, format valueobject.NumberFormat, start, end time.Time) error {
	if !objectiveType.IsValid() {
		return domainerror.NewObjectiveError(domainerror.ErrCodeInvalidObjectiveType, "invalid objective type", domainerror.ErrInvalidObjectiveType)
	}
	if format != "" && !format.IsValid() {
		return domainerror.NewObjectiveError(domainerror.ErrCodeInvalidNumberFormat, "invalid number format", domainerror.ErrInvalidNumberFormat)
	}
	if start.After(end) {
		return domainerror.NewObjectiveError(domainerror.ErrCodeInvalidDateRange, "start date must not be after end date", domainerror.ErrInvalidDateRange)
	}
	return nil
}
