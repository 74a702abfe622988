package pathfinding

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/pathfinder-api/grid"
	"github.com/beka-birhanu/pathfinder-api/service"
	"github.com/beka-birhanu/pathfinder-api/service/i"
	"github.com/gin-gonic/gin"
)

// Defaults are the grid parameters used when a request carries no
// overrides.
type Defaults struct {
	Rows         int
	Cols         int
	WallFraction float64
	MudFraction  float64
}

// ScenarioController serves solved pathfinding scenarios.
type ScenarioController struct {
	pathfinder i.Pathfinder
	defaults   Defaults
}

// NewScenarioController initializes a ScenarioController.
func NewScenarioController(pathfinder i.Pathfinder, defaults Defaults) (*ScenarioController, error) {
	if pathfinder == nil {
		return nil, errors.New("pathfinding: pathfinder service is required")
	}
	return &ScenarioController{
		pathfinder: pathfinder,
		defaults:   defaults,
	}, nil
}

// RegisterPublic registers public routes.
func (sc *ScenarioController) RegisterPublic(route *gin.RouterGroup) {
	scenario := route.Group("/scenario")
	{
		scenario.GET("/new", sc.newScenario)
	}
}

// RegisterProtected registers protected routes.
func (sc *ScenarioController) RegisterProtected(route *gin.RouterGroup) {}

// newScenario handles "generate new grid and path" requests.
func (sc *ScenarioController) newScenario(ctx *gin.Context) {
	var request NewScenarioRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Rows == 0 {
		request.Rows = sc.defaults.Rows
	}
	if request.Cols == 0 {
		request.Cols = sc.defaults.Cols
	}
	if request.WallFraction == 0 {
		request.WallFraction = sc.defaults.WallFraction
	}
	if request.MudFraction == 0 {
		request.MudFraction = sc.defaults.MudFraction
	}

	scenario, err := sc.pathfinder.NewScenario(request.Rows, request.Cols, request.WallFraction, request.MudFraction)
	if err != nil {
		if errors.Is(err, grid.ErrInvalidDimensions) || errors.Is(err, grid.ErrInvalidFractions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrUnreachableGoal) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "no path found (unexpected)"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating scenario"})
		return
	}

	ctx.JSON(http.StatusOK, newScenarioResponse(scenario))
}
