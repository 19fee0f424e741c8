// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// DateLayout is the calendar date format used for objective windows.
const DateLayout = "2006-01-02"

// Objective represents a tracked departmental goal.
type Objective struct {
	ID               uuid.UUID
	Department       valueobject.Department
	Name             string
	SmartDescription string
	Type             valueobject.ObjectiveType
	Target           float64
	NumberFormat     valueobject.NumberFormat
	StartDate        time.Time
	EndDate          time.Time
	OrderIndex       int
	ReverseLogic     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewObjective creates a new Objective entity with a fresh ID.
func NewObjective(
	department valueobject.Department,
	name, smartDescription string,
	objectiveType valueobject.ObjectiveType,
	target float64,
	numberFormat valueobject.NumberFormat,
	startDate, endDate time.Time,
	reverseLogic bool,
	now time.Time,
) *Objective {
	return &Objective{
		ID:               uuid.New(),
		Department:       department,
		Name:             name,
		SmartDescription: smartDescription,
		Type:             objectiveType,
		Target:           target,
		NumberFormat:     numberFormat.OrDefault(),
		StartDate:        truncateToDate(startDate),
		EndDate:          truncateToDate(endDate),
		ReverseLogic:     reverseLogic,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}
}

// DisplayName returns the short name, or the first 50 characters of the
// SMART description followed by "..." when no name was given.
func (o *Objective) DisplayName() string {
	if o.Name != "" {
		return o.Name
	}
	runes := []rune(o.SmartDescription)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return o.SmartDescription
}

// MonthlyValue is the figure recorded for one objective in one calendar month.
type MonthlyValue struct {
	ObjectiveID uuid.UUID
	Month       int
	Year        int
	Value       float64
	UpdatedAt   time.Time
}

// Before reports whether v is chronologically before other.
func (v MonthlyValue) Before(other MonthlyValue) bool {
	if v.Year != other.Year {
		return v.Year < other.Year
	}
	return v.Month < other.Month
}

// ObjectiveWithValues pairs an objective with all of its recorded values.
type ObjectiveWithValues struct {
	Objective *Objective
	Values    []MonthlyValue
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func truncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
