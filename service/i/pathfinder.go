package i

import (
	"github.com/beka-birhanu/pathfinder-api/domain"
	"github.com/beka-birhanu/pathfinder-api/grid"
	"github.com/beka-birhanu/pathfinder-api/search"
)

// GridGenerator produces randomized grids whose goal is guaranteed to be
// reachable from the start through non-wall cells.
type GridGenerator interface {
	Generate(rows, cols int, wallFraction, mudFraction float64) (*grid.Grid, grid.Position, grid.Position, error)
}

// PathSolver computes a minimum-cost route between two cells of a grid.
type PathSolver interface {
	FindPath(g *grid.Grid, start, goal grid.Position) (*search.Result, error)
}

// Pathfinder creates solved pathfinding scenarios.
type Pathfinder interface {
	NewScenario(rows, cols int, wallFraction, mudFraction float64) (*domain.Scenario, error)
}
