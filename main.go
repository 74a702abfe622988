package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/pathfinder-api/api"
	api_i "github.com/beka-birhanu/pathfinder-api/api/i"
	"github.com/beka-birhanu/pathfinder-api/api/pathfinding"
	"github.com/beka-birhanu/pathfinder-api/config"
	"github.com/beka-birhanu/pathfinder-api/grid"
	logger "github.com/beka-birhanu/pathfinder-api/infrastruture/log"
	"github.com/beka-birhanu/pathfinder-api/search"
	"github.com/beka-birhanu/pathfinder-api/service"
	"github.com/beka-birhanu/pathfinder-api/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	pathfinder         i.Pathfinder
	scenarioController api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func initPathfinder() {
	pathfindingLogger, err := logger.New("PATHFINDING", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating pathfinding logger: %v", err))
		os.Exit(1)
	}

	generator := grid.NewGenerator(config.Envs.RandomSeed)
	solver := search.NewSolver()

	pathfinder, err = service.NewPathfinding(generator, solver, pathfindingLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating pathfinding service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Pathfinding service initialized")
}

func initScenarioController() {
	var err error
	scenarioController, err = pathfinding.NewScenarioController(pathfinder, pathfinding.Defaults{
		Rows:         config.Envs.GridRows,
		Cols:         config.Envs.GridCols,
		WallFraction: config.Envs.WallFraction,
		MudFraction:  config.Envs.MudFraction,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating scenario controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Scenario controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{scenarioController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initPathfinder()
	initScenarioController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
