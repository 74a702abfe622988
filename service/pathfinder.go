package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/pathfinder-api/domain"
	"github.com/beka-birhanu/pathfinder-api/service/i"
)

var (
	ErrNilGenerator = errors.New("pathfinding: grid generator is required")
	ErrNilSolver    = errors.New("pathfinding: path solver is required")
	ErrNilLogger    = errors.New("pathfinding: logger is required")

	// ErrUnreachableGoal means the generator handed over a grid whose goal
	// the solver could not reach. The generator guarantees reachability, so
	// this is an internal defect, never a normal outcome.
	ErrUnreachableGoal = errors.New("pathfinding: generated grid has no route to the goal")
)

// Pathfinding orchestrates grid generation and path search into solved
// scenarios. It holds no per-request state; concurrent NewScenario calls
// are independent.
type Pathfinding struct {
	generator i.GridGenerator
	solver    i.PathSolver
	logger    i.Logger
}

// NewPathfinding creates a Pathfinding service from its dependencies.
func NewPathfinding(generator i.GridGenerator, solver i.PathSolver, logger i.Logger) (i.Pathfinder, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &Pathfinding{
		generator: generator,
		solver:    solver,
		logger:    logger,
	}, nil
}

// NewScenario generates a grid and solves it. Invalid dimensions or
// fractions surface as the generator's configuration errors; a solver
// failure on a generated grid is reported as ErrUnreachableGoal.
func (p *Pathfinding) NewScenario(rows, cols int, wallFraction, mudFraction float64) (*domain.Scenario, error) {
	g, start, goal, err := p.generator.Generate(rows, cols, wallFraction, mudFraction)
	if err != nil {
		return nil, err
	}

	result, err := p.solver.FindPath(g, start, goal)
	if err != nil {
		p.logger.Error(fmt.Sprintf("Generator handed over an unsolvable grid: start=%v goal=%v: %s", start, goal, err))
		return nil, ErrUnreachableGoal
	}

	scenario := domain.NewScenario(domain.ScenarioConfig{
		Grid:      g,
		Start:     start,
		Goal:      goal,
		Path:      result.Path,
		Expanded:  result.Expanded,
		TotalCost: result.TotalCost,
	})

	p.logger.Info(fmt.Sprintf("Scenario %s solved: steps=%d cost=%d expanded=%d", scenario.ID, len(result.Path), result.TotalCost, result.Expanded))
	return scenario, nil
}
