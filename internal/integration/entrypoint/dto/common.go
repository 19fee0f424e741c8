// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kpi-dashboard/backend/internal/domain/entity"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ParseDate parses a YYYY-MM-DD request date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(entity.DateLayout, value)
}

func formatDate(t time.Time) string {
	return t.Format(entity.DateLayout)
}
