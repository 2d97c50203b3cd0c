package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/labyrinth-api/api"
	mazeapi "github.com/beka-birhanu/labyrinth-api/api/maze"
	"github.com/beka-birhanu/labyrinth-api/config"
	"github.com/beka-birhanu/labyrinth-api/infrastruture/logger"
	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
)

// Global variables for dependencies
var (
	appLogger      i.Logger
	mazeManager    i.MazeManager
	mazeController *mazeapi.MazeController
	router         *api.Router
)

func initAppLogger() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		log.Fatalf("Creating app logger: %v", err)
	}
}

func initMazeService() {
	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeManager, err = service.NewMazeService(serviceLogger, &service.Options{
		Rows:       config.Envs.MazeRows,
		Cols:       config.Envs.MazeCols,
		TwistySize: config.Envs.TwistySize,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     config.Envs.GinMode,
		Controllers: []api.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	// Initialize dependencies
	initAppLogger()
	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
