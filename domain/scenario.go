// Package domain holds the application's core entities.
package domain

import (
	"github.com/beka-birhanu/pathfinder-api/grid"
	"github.com/google/uuid"
)

// Scenario is one generated-and-solved pathfinding puzzle. It is created
// fresh per request and read-only thereafter; nothing is persisted across
// requests.
type Scenario struct {
	ID        uuid.UUID       // Unique identifier of the scenario
	Grid      *grid.Grid      // The terrain the path was computed on
	Start     grid.Position   // Start cell, always a normal tile
	Goal      grid.Position   // Goal cell, always a normal tile
	Path      []grid.Position // Minimum-cost route from Start to Goal inclusive
	Expanded  int             // Cells finalized by the search
	TotalCost int             // Total traversal cost of Path
}

// ScenarioConfig carries the values needed to create a Scenario.
type ScenarioConfig struct {
	Grid      *grid.Grid
	Start     grid.Position
	Goal      grid.Position
	Path      []grid.Position
	Expanded  int
	TotalCost int
}

// NewScenario creates a Scenario with a fresh ID.
func NewScenario(config ScenarioConfig) *Scenario {
	return &Scenario{
		ID:        uuid.New(),
		Grid:      config.Grid,
		Start:     config.Start,
		Goal:      config.Goal,
		Path:      config.Path,
		Expanded:  config.Expanded,
		TotalCost: config.TotalCost,
	}
}
