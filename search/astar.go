/*
Package search computes minimum-cost routes on terrain grids.

The solver runs A* over the 4-connected grid graph. Entering a cell costs
that cell's tile cost (1 for open ground, 3 for mud); walls are never
enqueued. The Manhattan distance to the goal is the heuristic — it never
overestimates because every step costs at least 1, so returned paths are
cost-optimal.
*/
package search

import (
	"container/heap"
	"errors"

	"github.com/beka-birhanu/pathfinder-api/grid"
)

// Sentinel errors for path queries.
var (
	// ErrInvalidEndpoint indicates a start or goal outside the grid or on a wall.
	ErrInvalidEndpoint = errors.New("search: endpoint out of bounds or not walkable")
	// ErrNoPath indicates the frontier emptied before the goal was reached.
	ErrNoPath = errors.New("search: no path between start and goal")
)

// Result is a solved route.
type Result struct {
	Path      []grid.Position // Cells from start to goal inclusive
	Expanded  int             // Distinct cells finalized during the search
	TotalCost int             // Sum of the costs of every entered cell on the path
}

// Solver computes minimum-cost paths. It carries no state; every FindPath
// call is independent.
type Solver struct{}

// NewSolver creates a Solver.
func NewSolver() *Solver {
	return &Solver{}
}

// FindPath returns a minimum-total-cost path from start to goal.
//
// The frontier is a binary heap keyed on f = g + h with duplicate entries
// allowed; an entry popped for an already finalized cell is skipped. Ties
// on f break toward the lower g and then insertion order, so repeated
// calls on the same input return the same path and expansion count.
func (s *Solver) FindPath(g *grid.Grid, start, goal grid.Position) (*Result, error) {
	if !g.InBounds(start) || !g.InBounds(goal) || !g.At(start).Walkable() || !g.At(goal).Walkable() {
		return nil, ErrInvalidEndpoint
	}

	bestG := map[grid.Position]int{start: 0}
	parent := make(map[grid.Position]grid.Position)
	closed := make(map[grid.Position]bool, g.Rows*g.Cols)

	open := &frontier{}
	heap.Init(open)
	var seq uint64
	heap.Push(open, &frontierItem{pos: start, g: 0, f: start.ManhattanTo(goal), seq: seq})

	expanded := 0
	for open.Len() > 0 {
		current := heap.Pop(open).(*frontierItem)
		if closed[current.pos] {
			// Stale duplicate; a cheaper entry was finalized earlier.
			continue
		}
		closed[current.pos] = true
		expanded++

		if current.pos == goal {
			return &Result{
				Path:      reconstructPath(parent, goal, start),
				Expanded:  expanded,
				TotalCost: current.g,
			}, nil
		}

		for _, neighbor := range g.Neighbors(current.pos) {
			if closed[neighbor] {
				continue
			}
			tentativeG := current.g + g.At(neighbor).Cost()
			if known, seen := bestG[neighbor]; seen && tentativeG >= known {
				continue
			}
			bestG[neighbor] = tentativeG
			parent[neighbor] = current.pos
			seq++
			heap.Push(open, &frontierItem{
				pos: neighbor,
				g:   tentativeG,
				f:   tentativeG + neighbor.ManhattanTo(goal),
				seq: seq,
			})
		}
	}

	return nil, ErrNoPath
}

// reconstructPath walks the parent links from goal back to start and
// reverses the result in place.
func reconstructPath(parent map[grid.Position]grid.Position, goal, start grid.Position) []grid.Position {
	path := []grid.Position{goal}
	for current := goal; current != start; {
		current = parent[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
