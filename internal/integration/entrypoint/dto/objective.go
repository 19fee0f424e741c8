package dto

import (
	"time"

	"github.com/kpi-dashboard/backend/internal/application/usecase/objective"
	"github.com/kpi-dashboard/backend/internal/domain/entity"
	"github.com/kpi-dashboard/backend/internal/domain/progress"
	"github.com/kpi-dashboard/backend/internal/domain/valueobject"
)

// CreateObjectiveRequest represents the request body for objective creation.
type CreateObjectiveRequest struct {
	Department     string   `json:"department" binding:"required,department"`
	ObjectiveName  string   `json:"objectiveName" binding:"max=200"`
	ObjectiveSmart string   `json:"objectiveSmart" binding:"required"`
	TypeObjective  string   `json:"typeObjective" binding:"required,objective_type"`
	TargetNumeric  *float64 `json:"targetNumeric" binding:"required"`
	NumberFormat   string   `json:"numberFormat" binding:"omitempty,number_format"`
	StartDate      string   `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate        string   `json:"endDate" binding:"required,datetime=2006-01-02"`
	ReverseLogic   bool     `json:"reverseLogic"`
	OrderIndex     *int     `json:"orderIndex,omitempty" binding:"omitempty,min=0"`
}

// ToFields converts the request into use case fields. Dates are checked by
// the binding tags, so a parse failure here is reported as a zero date.
func (r CreateObjectiveRequest) ToFields() objective.Fields {
	start, _ := ParseDate(r.StartDate)
	end, _ := ParseDate(r.EndDate)

	var target float64
	if r.TargetNumeric != nil {
		target = *r.TargetNumeric
	}

	return objective.Fields{
		Department:       valueobject.Department(r.Department),
		Name:             r.ObjectiveName,
		SmartDescription: r.ObjectiveSmart,
		Type:             valueobject.ObjectiveType(r.TypeObjective),
		Target:           target,
		NumberFormat:     valueobject.NumberFormat(r.NumberFormat),
		StartDate:        start,
		EndDate:          end,
		ReverseLogic:     r.ReverseLogic,
	}
}

// BulkCreateObjectivesRequest represents the request body for bulk creation.
type BulkCreateObjectivesRequest struct {
	Objectives []CreateObjectiveRequest `json:"objectives" binding:"required,min=1,dive"`
}

// UpdateObjectiveRequest represents the request body for a partial update.
type UpdateObjectiveRequest struct {
	ObjectiveName  *string  `json:"objectiveName,omitempty" binding:"omitempty,max=200"`
	ObjectiveSmart *string  `json:"objectiveSmart,omitempty" binding:"omitempty,min=1"`
	TypeObjective  *string  `json:"typeObjective,omitempty" binding:"omitempty,objective_type"`
	TargetNumeric  *float64 `json:"targetNumeric,omitempty"`
	NumberFormat   *string  `json:"numberFormat,omitempty" binding:"omitempty,number_format"`
	StartDate      *string  `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	EndDate        *string  `json:"endDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ReverseLogic   *bool    `json:"reverseLogic,omitempty"`
	OrderIndex     *int     `json:"orderIndex,omitempty" binding:"omitempty,min=0"`
}

// BulkDeleteObjectivesRequest represents the request body for bulk deletion.
type BulkDeleteObjectivesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// BulkDeleteObjectivesResponse represents the response for bulk deletion.
type BulkDeleteObjectivesResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ReorderObjectivesRequest represents the request body for reordering a department.
type ReorderObjectivesRequest struct {
	Department string   `json:"department" binding:"required,department"`
	OrderedIDs []string `json:"orderedIds" binding:"required,min=1,dive,uuid"`
}

// ObjectiveResponse represents a single objective in API responses.
type ObjectiveResponse struct {
	ID             string            `json:"id"`
	Department     string            `json:"department"`
	ObjectiveName  string            `json:"objectiveName"`
	ObjectiveSmart string            `json:"objectiveSmart"`
	TypeObjective  string            `json:"typeObjective"`
	TargetNumeric  float64           `json:"targetNumeric"`
	NumberFormat   string            `json:"numberFormat"`
	StartDate      string            `json:"startDate"`
	EndDate        string            `json:"endDate"`
	OrderIndex     int               `json:"orderIndex"`
	ReverseLogic   bool              `json:"reverseLogic"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Values         []ValueResponse   `json:"values,omitempty"`
	Progress       *ProgressResponse `json:"progress,omitempty"`
}

// ProgressResponse represents the computed progress of an objective.
type ProgressResponse struct {
	CurrentValue          float64  `json:"currentValue"`
	FormattedValue        string   `json:"formattedValue"`
	ProgressPercentage    float64  `json:"progressPercentage"`
	Status                string   `json:"status"`
	IsOnTrack             bool     `json:"isOnTrack"`
	IsExpired             bool     `json:"isExpired"`
	DaysUntilExpiry       int      `json:"daysUntilExpiry"`
	TimeElapsedPercentage *float64 `json:"timeElapsedPercentage,omitempty"`
}

// ObjectiveListResponse represents the response for listing objectives.
type ObjectiveListResponse struct {
	Objectives []ObjectiveResponse `json:"objectives"`
	Period     string              `json:"period,omitempty"`
}

// ToObjectiveResponse converts a domain Objective entity to an ObjectiveResponse DTO.
func ToObjectiveResponse(o *entity.Objective) ObjectiveResponse {
	return ObjectiveResponse{
		ID:             o.ID.String(),
		Department:     string(o.Department),
		ObjectiveName:  o.Name,
		ObjectiveSmart: o.SmartDescription,
		TypeObjective:  string(o.Type),
		TargetNumeric:  o.Target,
		NumberFormat:   string(o.NumberFormat.OrDefault()),
		StartDate:      formatDate(o.StartDate),
		EndDate:        formatDate(o.EndDate),
		OrderIndex:     o.OrderIndex,
		ReverseLogic:   o.ReverseLogic,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ToObjectiveListResponse converts created objectives to a list response.
func ToObjectiveListResponse(objectives []*entity.Objective) ObjectiveListResponse {
	responses := make([]ObjectiveResponse, len(objectives))
	for i, o := range objectives {
		responses[i] = ToObjectiveResponse(o)
	}
	return ObjectiveListResponse{Objectives: responses}
}

// ToObjectiveViewResponse converts an objective with values and progress.
func ToObjectiveViewResponse(view objective.View) ObjectiveResponse {
	response := ToObjectiveResponse(view.Objective)
	response.Values = ToValueResponses(view.Values)
	p := ToProgressResponse(view.Objective, view.Progress)
	p.TimeElapsedPercentage = view.TimeElapsedPercent
	response.Progress = &p
	return response
}

// ToObjectiveViewListResponse converts listed views to a list response.
func ToObjectiveViewListResponse(views []objective.View, period string) ObjectiveListResponse {
	responses := make([]ObjectiveResponse, len(views))
	for i, view := range views {
		responses[i] = ToObjectiveViewResponse(view)
	}
	return ObjectiveListResponse{Objectives: responses, Period: period}
}

// ToProgressResponse converts a computed result.
func ToProgressResponse(o *entity.Objective, result progress.Result) ProgressResponse {
	return ProgressResponse{
		CurrentValue:       result.CurrentValue,
		FormattedValue:     valueobject.FormatValue(result.CurrentValue, o.NumberFormat),
		ProgressPercentage: result.ProgressPercent,
		Status:             string(result.Status),
		IsOnTrack:          result.IsOnTrack,
		IsExpired:          result.IsExpired,
		DaysUntilExpiry:    result.DaysUntilExpiry,
	}
}

// PeriodQuery selects a month range for department listings. Without
// startMonth and endMonth the listing is year-to-date.
type PeriodQuery struct {
	StartMonth *int `form:"startMonth" binding:"required_with=EndMonth,omitempty,min=1,max=12"`
	EndMonth   *int `form:"endMonth" binding:"required_with=StartMonth,omitempty,min=1,max=12"`
	Year       *int `form:"year" binding:"omitempty,min=2020,max=2030"`
}

// ToPeriod returns nil when no range was requested.
func (q PeriodQuery) ToPeriod() *progress.Period {
	if q.StartMonth == nil || q.EndMonth == nil {
		return nil
	}
	period := progress.Period{StartMonth: *q.StartMonth, EndMonth: *q.EndMonth}
	if q.Year != nil {
		period.Year = *q.Year
	}
	return &period
}
