// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// ObjectiveModel represents the objectives table in the database.
type ObjectiveModel struct {
	ID             uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Department     string                `gorm:"type:varchar(50);not null;index:idx_objectives_department_order,priority:1"`
	ObjectiveName  string                `gorm:"type:varchar(255)"`
	ObjectiveSmart string                `gorm:"type:text;not null"`
	TypeObjective  string                `gorm:"type:varchar(20);not null"`
	TargetNumeric  float64               `gorm:"not null"`
	NumberFormat   string                `gorm:"type:varchar(20);not null;default:'number'"`
	StartDate      time.Time             `gorm:"type:date;not null"`
	EndDate        time.Time             `gorm:"type:date;not null"`
	OrderIndex     int                   `gorm:"not null;default:0;index:idx_objectives_department_order,priority:2"`
	ReverseLogic   bool                  `gorm:"not null;default:false"`
	CreatedAt      time.Time             `gorm:"not null"`
	UpdatedAt      time.Time             `gorm:"not null"`
	Values         []ObjectiveValueModel `gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ObjectiveModel.
func (ObjectiveModel) TableName() string {
	return "objectives"
}

// ToEntity converts an ObjectiveModel to a domain Objective entity.
func (m *ObjectiveModel) ToEntity() *entity.Objective {
	return &entity.Objective{
		ID:               m.ID,
		Department:       valueobject.Department(m.Department),
		Name:             m.ObjectiveName,
		SmartDescription: m.ObjectiveSmart,
		Type:             valueobject.ObjectiveType(m.TypeObjective),
		Target:           m.TargetNumeric,
		NumberFormat:     valueobject.NumberFormat(m.NumberFormat).OrDefault(),
		StartDate:        asDate(m.StartDate),
		EndDate:          asDate(m.EndDate),
		OrderIndex:       m.OrderIndex,
		ReverseLogic:     m.ReverseLogic,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ObjectiveFromEntity creates an ObjectiveModel from a domain Objective entity.
func ObjectiveFromEntity(objective *entity.Objective) *ObjectiveModel {
	return &ObjectiveModel{
		ID:             objective.ID,
		Department:     string(objective.Department),
		ObjectiveName:  objective.Name,
		ObjectiveSmart: objective.SmartDescription,
		TypeObjective:  string(objective.Type),
		TargetNumeric:  objective.Target,
		NumberFormat:   string(objective.NumberFormat.OrDefault()),
		StartDate:      asDate(objective.StartDate),
		EndDate:        asDate(objective.EndDate),
		OrderIndex:     objective.OrderIndex,
		ReverseLogic:   objective.ReverseLogic,
		CreatedAt:      objective.CreatedAt,
		UpdatedAt:      objective.UpdatedAt,
	}
}

// ObjectiveValueModel represents the objective_values table in the database.
// One row per objective, month and year.
type ObjectiveValueModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	ObjectiveID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_objective_month_year,priority:1"`
	Month       int       `gorm:"not null;uniqueIndex:idx_objective_month_year,priority:2"`
	Year        int       `gorm:"not null;uniqueIndex:idx_objective_month_year,priority:3"`
	Value       float64   `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the ObjectiveValueModel.
func (ObjectiveValueModel) TableName() string {
	return "objective_values"
}

// ToEntity converts an ObjectiveValueModel to a domain MonthlyValue.
func (m *ObjectiveValueModel) ToEntity() entity.MonthlyValue {
	return entity.MonthlyValue{
		ObjectiveID: m.ObjectiveID,
		Month:       m.Month,
		Year:        m.Year,
		Value:       m.Value,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ObjectiveValueFromEntity creates an ObjectiveValueModel from a domain MonthlyValue.
func ObjectiveValueFromEntity(value *entity.MonthlyValue) *ObjectiveValueModel {
	return &ObjectiveValueModel{
		ObjectiveID: value.ObjectiveID,
		Month:       value.Month,
		Year:        value.Year,
		Value:       value.Value,
		UpdatedAt:   value.UpdatedAt,
	}
}

// asDate normalises a date column to UTC midnight; drivers differ in the
// location they scan DATE columns into.
func asDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
