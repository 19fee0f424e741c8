package dto

import "github.com/kpi-dashboard/backend/internal/application/usecase/seed"

// SeedResponse reports what a seed scenario wrote.
type SeedResponse struct {
	Message    string `json:"message"`
	Scenario   string `json:"scenario"`
	Cleared    bool   `json:"cleared"`
	Objectives int    `json:"objectives"`
	Values     int    `json:"values"`
}

// ToSeedResponse converts the seed output.
func ToSeedResponse(output *seed.SeedOutput) SeedResponse {
	return SeedResponse{
		Message:    "Database seeded successfully",
		Scenario:   output.Scenario,
		Cleared:    output.Cleared,
		Objectives: output.Objectives,
		Values:     output.Values,
	}
}

// SeedScenariosResponse lists the fixture scenarios that can be loaded.
type SeedScenariosResponse struct {
	Scenarios []string `json:"scenarios"`
}
