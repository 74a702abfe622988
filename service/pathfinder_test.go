package service

import (
	"testing"

	"github.com/beka-birhanu/pathfinder-api/grid"
	"github.com/beka-birhanu/pathfinder-api/search"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubGenerator returns a canned grid regardless of the requested
// parameters.
type stubGenerator struct {
	grid  *grid.Grid
	start grid.Position
	goal  grid.Position
}

func (s *stubGenerator) Generate(rows, cols int, wallFraction, mudFraction float64) (*grid.Grid, grid.Position, grid.Position, error) {
	return s.grid, s.start, s.goal, nil
}

// recordLogger captures log lines for assertions.
type recordLogger struct {
	infos    []string
	warnings []string
	errors   []string
}

func (l *recordLogger) Info(message string)    { l.infos = append(l.infos, message) }
func (l *recordLogger) Warning(message string) { l.warnings = append(l.warnings, message) }
func (l *recordLogger) Error(message string)   { l.errors = append(l.errors, message) }

func gridFromRows(rows []string) *grid.Grid {
	cells := make([][]grid.Tile, len(rows))
	for r, row := range rows {
		cells[r] = make([]grid.Tile, len(row))
		for c := range row {
			cells[r][c] = grid.Tile(row[c])
		}
	}
	return &grid.Grid{Rows: len(rows), Cols: len(rows[0]), Cells: cells}
}

func TestNewPathfinding_RequiresDependencies(t *testing.T) {
	generator := grid.NewGenerator(1)
	solver := search.NewSolver()
	logger := &recordLogger{}

	t.Run("nil generator", func(t *testing.T) {
		_, err := NewPathfinding(nil, solver, logger)
		assert.ErrorIs(t, err, ErrNilGenerator)
	})

	t.Run("nil solver", func(t *testing.T) {
		_, err := NewPathfinding(generator, nil, logger)
		assert.ErrorIs(t, err, ErrNilSolver)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := NewPathfinding(generator, solver, nil)
		assert.ErrorIs(t, err, ErrNilLogger)
	})
}

func TestNewScenario(t *testing.T) {
	t.Run("solves a generated grid", func(t *testing.T) {
		logger := &recordLogger{}
		svc, err := NewPathfinding(grid.NewGenerator(7), search.NewSolver(), logger)
		assert.NoError(t, err)

		scenario, err := svc.NewScenario(10, 10, 0.2, 0.3)
		assert.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, scenario.ID)
		assert.Equal(t, scenario.Start, scenario.Path[0])
		assert.Equal(t, scenario.Goal, scenario.Path[len(scenario.Path)-1])
		assert.Positive(t, scenario.Expanded)
		assert.Len(t, logger.infos, 1)
		assert.Empty(t, logger.errors)
	})

	t.Run("propagates configuration errors", func(t *testing.T) {
		svc, err := NewPathfinding(grid.NewGenerator(7), search.NewSolver(), &recordLogger{})
		assert.NoError(t, err)

		_, err = svc.NewScenario(0, 10, 0.2, 0.3)
		assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

		_, err = svc.NewScenario(10, 10, 0.6, 0.6)
		assert.ErrorIs(t, err, grid.ErrInvalidFractions)
	})

	t.Run("reports an unsolvable grid as an invariant violation", func(t *testing.T) {
		// A generator must never hand over a split grid; if one does, the
		// service reports the broken contract instead of a degenerate result.
		logger := &recordLogger{}
		generator := &stubGenerator{
			grid: gridFromRows([]string{
				".#.",
				".#.",
				".#.",
			}),
			start: grid.Position{Row: 0, Col: 0},
			goal:  grid.Position{Row: 0, Col: 2},
		}

		svc, err := NewPathfinding(generator, search.NewSolver(), logger)
		assert.NoError(t, err)

		_, err = svc.NewScenario(3, 3, 0.2, 0.3)
		assert.ErrorIs(t, err, ErrUnreachableGoal)
		assert.Len(t, logger.errors, 1)
	})
}
