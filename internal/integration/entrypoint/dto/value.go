package dto

import (
	"time"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// UpsertValueRequest represents the request body for recording a monthly value.
type UpsertValueRequest struct {
	Month int      `json:"month" binding:"required,min=1,max=12"`
	Year  int      `json:"year" binding:"required,min=2020,max=2030"`
	Value *float64 `json:"value" binding:"required"`
}

// ValueResponse represents a monthly value in API responses.
type ValueResponse struct {
	ObjectiveID string    `json:"objectiveId"`
	Month       int       `json:"month"`
	MonthName   string    `json:"monthName"`
	Year        int       `json:"year"`
	Value       float64   `json:"value"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValueListResponse represents the response for listing monthly values.
type ValueListResponse struct {
	Values []ValueResponse `json:"values"`
}

// UpsertValueResponse represents the stored value and the objective's new progress.
type UpsertValueResponse struct {
	Value    ValueResponse    `json:"value"`
	Progress ProgressResponse `json:"progress"`
}

// ToValueResponse converts a domain MonthlyValue to a ValueResponse DTO.
func ToValueResponse(v entity.MonthlyValue) ValueResponse {
	return ValueResponse{
		ObjectiveID: v.ObjectiveID.String(),
		Month:       v.Month,
		MonthName:   valueobject.MonthName(v.Month),
		Year:        v.Year,
		Value:       v.Value,
		UpdatedAt:   v.UpdatedAt,
	}
}

// ToValueResponses converts a slice of values, never returning nil.
func ToValueResponses(values []entity.MonthlyValue) []ValueResponse {
	responses := make([]ValueResponse, len(values))
	for i, v := range values {
		responses[i] = ToValueResponse(v)
	}
	return responses
}
