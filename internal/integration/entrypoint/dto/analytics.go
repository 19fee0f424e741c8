package dto

import (
	"time"

	"github.com/kpi-dashboard/backend/internal/domain/progress"
)

// MonthFigureResponse is a value labelled with its Italian month name.
type MonthFigureResponse struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// PerformerResponse names the best or worst objective of a department.
type PerformerResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// DepartmentSummaryResponse represents the aggregated department figures.
type DepartmentSummaryResponse struct {
	DepartmentName           string             `json:"departmentName"`
	TotalObjectives          int                `json:"totalObjectives"`
	OverallProgressAverage   float64            `json:"overallProgressAverage"`
	ObjectivesByHealthStatus map[string]int     `json:"objectivesByHealthStatus"`
	ObjectivesByStatus       map[string]int     `json:"objectivesByStatus"`
	CountByType              map[string]int     `json:"countByType"`
	TopPerformer             *PerformerResponse `json:"topPerformer"`
	WorstPerformer           *PerformerResponse `json:"worstPerformer"`
}

// EnrichedObjectiveResponse represents one objective with its analytics.
type EnrichedObjectiveResponse struct {
	ID                         string                `json:"id"`
	ObjectiveName              string                `json:"objectiveName"`
	ObjectiveSmartDescription  string                `json:"objectiveSmartDescription"`
	Department                 string                `json:"department"`
	ObjectiveType              string                `json:"objectiveType"`
	NumberFormat               string                `json:"numberFormat"`
	ReverseLogic               bool                  `json:"reverseLogic"`
	TargetValue                float64               `json:"targetValue"`
	StartDate                  string                `json:"startDate"`
	EndDate                    string                `json:"endDate"`
	CurrentValue               float64               `json:"currentValue"`
	ProgressPercentage         float64               `json:"progressPercentage"`
	Status                     string                `json:"status"`
	IsExpired                  bool                  `json:"isExpired"`
	DaysUntilExpiry            int                   `json:"daysUntilExpiry"`
	LastUpdate                 *MonthFigureResponse  `json:"lastUpdate"`
	ExpectedProgressPercentage float64               `json:"expectedProgressPercentage"`
	VariancePercentage         float64               `json:"variancePercentage"`
	HealthStatus               string                `json:"healthStatus"`
	Trend                      string                `json:"trend"`
	TimeElapsedPercentage      float64               `json:"timeElapsedPercentage"`
	MonthlyValues              []MonthFigureResponse `json:"monthlyValues"`
}

// DepartmentAnalyticsResponse represents the analytics of one department.
type DepartmentAnalyticsResponse struct {
	DepartmentSummary DepartmentSummaryResponse   `json:"departmentSummary"`
	Objectives        []EnrichedObjectiveResponse `json:"objectives"`
	AsOf              time.Time                   `json:"asOf"`
}

// ToDepartmentAnalyticsResponse converts the enrichment output.
func ToDepartmentAnalyticsResponse(a *progress.DepartmentAnalytics) DepartmentAnalyticsResponse {
	objectives := make([]EnrichedObjectiveResponse, len(a.Objectives))
	for i := range a.Objectives {
		objectives[i] = toEnrichedObjectiveResponse(&a.Objectives[i])
	}
	return DepartmentAnalyticsResponse{
		DepartmentSummary: toSummaryResponse(a.Summary),
		Objectives:        objectives,
		AsOf:              a.AsOf,
	}
}

func toEnrichedObjectiveResponse(o *progress.ObjectiveAnalytics) EnrichedObjectiveResponse {
	obj := o.Objective
	response := EnrichedObjectiveResponse{
		ID:                         obj.ID.String(),
		ObjectiveName:              o.ObjectiveName,
		ObjectiveSmartDescription:  obj.SmartDescription,
		Department:                 string(obj.Department),
		ObjectiveType:              string(obj.Type),
		NumberFormat:               string(obj.NumberFormat.OrDefault()),
		ReverseLogic:               obj.ReverseLogic,
		TargetValue:                obj.Target,
		StartDate:                  formatDate(obj.StartDate),
		EndDate:                    formatDate(obj.EndDate),
		CurrentValue:               o.Result.CurrentValue,
		ProgressPercentage:         o.Result.ProgressPercent,
		Status:                     string(o.Result.Status),
		IsExpired:                  o.Result.IsExpired,
		DaysUntilExpiry:            o.Result.DaysUntilExpiry,
		ExpectedProgressPercentage: o.ExpectedProgressPercent,
		VariancePercentage:         o.VariancePercent,
		HealthStatus:               string(o.HealthStatus),
		Trend:                      string(o.Trend),
		TimeElapsedPercentage:      o.TimeElapsedPercent,
		MonthlyValues:              make([]MonthFigureResponse, len(o.MonthlyValues)),
	}
	if o.LastUpdate != nil {
		response.LastUpdate = &MonthFigureResponse{Month: o.LastUpdate.Month, Value: o.LastUpdate.Value}
	}
	for i, m := range o.MonthlyValues {
		response.MonthlyValues[i] = MonthFigureResponse{Month: m.Month, Value: m.Value}
	}
	return response
}

func toSummaryResponse(s progress.DepartmentSummary) DepartmentSummaryResponse {
	response := DepartmentSummaryResponse{
		DepartmentName:           string(s.Department),
		TotalObjectives:          s.TotalObjectives,
		OverallProgressAverage:   s.OverallProgressAverage,
		ObjectivesByHealthStatus: make(map[string]int, len(s.ObjectivesByHealthStatus)),
		ObjectivesByStatus:       make(map[string]int, len(s.ObjectivesByStatus)),
		CountByType:              make(map[string]int, len(s.CountByType)),
		TopPerformer:             toPerformerResponse(s.TopPerformer),
		WorstPerformer:           toPerformerResponse(s.WorstPerformer),
	}
	for k, v := range s.ObjectivesByHealthStatus {
		response.ObjectivesByHealthStatus[string(k)] = v
	}
	for k, v := range s.ObjectivesByStatus {
		response.ObjectivesByStatus[string(k)] = v
	}
	for k, v := range s.CountByType {
		response.CountByType[string(k)] = v
	}
	return response
}

func toPerformerResponse(p *progress.Performer) *PerformerResponse {
	if p == nil {
		return nil
	}
	return &PerformerResponse{ID: p.ObjectiveID.String(), Name: p.Name, ProgressPercentage: p.ProgressPercent}
}
