package grid

import (
	"errors"
	"math/rand"
)

const (
	minGridDimension = 2
	maxGridDimension = 20

	// maxGenerationAttempts bounds the reject-and-retry loop. Past it the
	// generator carves a corridor instead of drawing yet another grid, so
	// generation terminates even for wall-heavy fractions.
	maxGenerationAttempts = 64
)

// Sentinel errors for generator configuration.
var (
	// ErrInvalidDimensions indicates rows or cols outside the supported range.
	ErrInvalidDimensions = errors.New("grid: dimensions out of range")
	// ErrInvalidFractions indicates wall/mud fractions outside [0,1) or summing to 1 or more.
	ErrInvalidFractions = errors.New("grid: tile fractions out of range")
)

// Generator produces randomized grids with a guaranteed walkable route
// from start to goal. A Generator holds no mutable state: each Generate
// call draws from its own rand source, so concurrent calls need no
// coordination.
type Generator struct {
	seed int64
}

// NewGenerator creates a Generator. A non-zero seed makes every Generate
// call reproduce the same output; seed 0 draws a fresh seed per call.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Generate returns a rows×cols grid along with distinct start and goal
// positions. Both endpoints are normal tiles and the goal is always
// reachable from the start through non-wall cells.
//
// Cell kinds are sampled independently: wall with probability
// wallFraction, otherwise mud with probability mudFraction/(1-wallFraction),
// otherwise normal.
func (gen *Generator) Generate(rows, cols int, wallFraction, mudFraction float64) (*Grid, Position, Position, error) {
	if min(rows, cols) < minGridDimension || max(rows, cols) > maxGridDimension {
		return nil, Position{}, Position{}, ErrInvalidDimensions
	}
	if wallFraction < 0 || mudFraction < 0 || wallFraction+mudFraction >= 1 {
		return nil, Position{}, Position{}, ErrInvalidFractions
	}

	seed := gen.seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	var g *Grid
	var start, goal Position
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		g = randomGrid(rng, rows, cols, wallFraction, mudFraction)
		start, goal = placeEndpoints(rng, g)
		if reachable(g, start, goal) {
			return g, start, goal, nil
		}
	}

	// Attempt budget exhausted: keep the last grid and carve a corridor
	// so the reachability guarantee holds unconditionally.
	carveCorridor(g, start, goal)
	return g, start, goal, nil
}

// randomGrid samples a fresh grid of tile kinds.
func randomGrid(rng *rand.Rand, rows, cols int, wallFraction, mudFraction float64) *Grid {
	mudGivenOpen := 0.0
	if wallFraction < 1 {
		mudGivenOpen = mudFraction / (1 - wallFraction)
	}

	cells := make([][]Tile, rows)
	for r := range cells {
		cells[r] = make([]Tile, cols)
		for c := range cells[r] {
			switch {
			case rng.Float64() < wallFraction:
				cells[r][c] = TileWall
			case rng.Float64() < mudGivenOpen:
				cells[r][c] = TileMud
			default:
				cells[r][c] = TileNormal
			}
		}
	}

	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

// placeEndpoints picks two distinct random non-wall cells and forces both
// to normal so they are always enterable. If random sampling left fewer
// than two open cells, opposite corners are opened instead.
func placeEndpoints(rng *rand.Rand, g *Grid) (Position, Position) {
	var open []Position
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c].Walkable() {
				open = append(open, Position{Row: r, Col: c})
			}
		}
	}

	if len(open) < 2 {
		open = []Position{{Row: 0, Col: 0}, {Row: g.Rows - 1, Col: g.Cols - 1}}
	}

	start := open[rng.Intn(len(open))]
	goal := open[rng.Intn(len(open))]
	for goal == start {
		goal = open[rng.Intn(len(open))]
	}

	g.Cells[start.Row][start.Col] = TileNormal
	g.Cells[goal.Row][goal.Col] = TileNormal
	return start, goal
}

// reachable runs a flood fill over non-wall cells from start and reports
// whether goal was reached.
func reachable(g *Grid, start, goal Position) bool {
	seen := make(map[Position]struct{}, g.Rows*g.Cols)
	seen[start] = struct{}{}
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			return true
		}
		for _, neighbor := range g.Neighbors(current) {
			if _, included := seen[neighbor]; !included {
				seen[neighbor] = struct{}{}
				queue = append(queue, neighbor)
			}
		}
	}
	return false
}

// carveCorridor opens an L-shaped route from start to goal, replacing any
// wall on it with a normal tile. Mud on the corridor is left alone; it is
// slow, not blocking.
func carveCorridor(g *Grid, start, goal Position) {
	open := func(p Position) {
		if g.Cells[p.Row][p.Col] == TileWall {
			g.Cells[p.Row][p.Col] = TileNormal
		}
	}

	current := start
	for current.Row != goal.Row {
		if current.Row < goal.Row {
			current.Row++
		} else {
			current.Row--
		}
		open(current)
	}
	for current.Col != goal.Col {
		if current.Col < goal.Col {
			current.Col++
		} else {
			current.Col--
		}
		open(current)
	}
}
