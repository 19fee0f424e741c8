package dto

import (
	"github.com/kpi-dashboard/backend/internal/application/adapter"
	"github.com/kpi-dashboard/backend/internal/application/usecase/alert"
)

// ExpiryDigestRequest optionally overrides the configured recipients and window.
type ExpiryDigestRequest struct {
	Recipients []string `json:"recipients,omitempty" binding:"omitempty,dive,email"`
	WindowDays *int     `json:"windowDays,omitempty" binding:"omitempty,min=0,max=365"`
}

// ExpiryDigestItemResponse is one objective listed in the digest.
type ExpiryDigestItemResponse struct {
	Department         string  `json:"department"`
	ObjectiveName      string  `json:"objectiveName"`
	EndDate            string  `json:"endDate"`
	DaysUntilExpiry    int     `json:"daysUntilExpiry"`
	ProgressPercentage float64 `json:"progressPercentage"`
	Status             string  `json:"status"`
	IsExpired          bool    `json:"isExpired"`
}

// ExpiryDigestResponse reports the objectives found and the e-mails queued.
type ExpiryDigestResponse struct {
	Objectives []ExpiryDigestItemResponse `json:"objectives"`
	Queued     int                        `json:"queued"`
}

// ToExpiryDigestResponse converts the digest output.
func ToExpiryDigestResponse(output *alert.SendExpiryDigestOutput) ExpiryDigestResponse {
	items := make([]ExpiryDigestItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = toExpiryDigestItemResponse(item)
	}
	return ExpiryDigestResponse{Objectives: items, Queued: output.Queued}
}

func toExpiryDigestItemResponse(item adapter.ExpiryDigestItem) ExpiryDigestItemResponse {
	return ExpiryDigestItemResponse{
		Department:         item.Department,
		ObjectiveName:      item.Name,
		EndDate:            item.EndDate,
		DaysUntilExpiry:    item.DaysUntilExpiry,
		ProgressPercentage: item.ProgressPercent,
		Status:             item.Status,
		IsExpired:          item.Expired,
	}
}
