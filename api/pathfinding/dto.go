// Package pathfinding provides structures and utilities for serving solved
// pathfinding scenarios over HTTP.
package pathfinding

import (
	"github.com/beka-birhanu/pathfinder-api/domain"
)

// NewScenarioRequest carries the optional per-request overrides of the
// configured grid defaults. Zero values mean "use the default".
type NewScenarioRequest struct {
	Rows         int     `form:"rows"`
	Cols         int     `form:"cols"`
	WallFraction float64 `form:"wall"`
	MudFraction  float64 `form:"mud"`
}

// GridResponse represents the grid as single-character tile codes:
// "." normal, "~" mud, "#" wall.
type GridResponse struct {
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Cells [][]string `json:"cells"`
}

// ScenarioResponse represents one solved scenario. Start, goal and every
// path element are [row, col] pairs; the path runs from start to goal
// inclusive.
type ScenarioResponse struct {
	ID        string       `json:"id"`
	Grid      GridResponse `json:"grid"`
	Start     [2]int       `json:"start"`
	Goal      [2]int       `json:"goal"`
	Path      [][2]int     `json:"path"`
	Expanded  int          `json:"expanded"`
	TotalCost int          `json:"total_cost"`
}

// newScenarioResponse converts a domain scenario into its wire form.
func newScenarioResponse(scenario *domain.Scenario) *ScenarioResponse {
	cells := make([][]string, scenario.Grid.Rows)
	for r, row := range scenario.Grid.Cells {
		cells[r] = make([]string, scenario.Grid.Cols)
		for c, tile := range row {
			cells[r][c] = tile.Code()
		}
	}

	path := make([][2]int, len(scenario.Path))
	for i, pos := range scenario.Path {
		path[i] = [2]int{pos.Row, pos.Col}
	}

	return &ScenarioResponse{
		ID:        scenario.ID.String(),
		Grid:      GridResponse{Rows: scenario.Grid.Rows, Cols: scenario.Grid.Cols, Cells: cells},
		Start:     [2]int{scenario.Start.Row, scenario.Start.Col},
		Goal:      [2]int{scenario.Goal.Row, scenario.Goal.Col},
		Path:      path,
		Expanded:  scenario.Expanded,
		TotalCost: scenario.TotalCost,
	}
}
