package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP       string  // Host IP for the server
	RESTPort     int     // Port for the REST API
	GinMode      string  // Mode for the Gin framework (e.g., release, debug, test)
	GridRows     int     // Default number of grid rows per scenario
	GridCols     int     // Default number of grid columns per scenario
	WallFraction float64 // Default probability of a cell being a wall
	MudFraction  float64 // Default probability of a cell being mud
	RandomSeed   int64   // Seed for grid generation; 0 means a fresh seed per request
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file. Every value has a
// default so the server can start with no .env at all.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:       getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:     getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
		GridRows:     getEnvAsIntWithDefault("GRID_ROWS", 10),
		GridCols:     getEnvAsIntWithDefault("GRID_COLS", 10),
		WallFraction: getEnvAsFloatWithDefault("WALL_FRACTION", 0.16),
		MudFraction:  getEnvAsFloatWithDefault("MUD_FRACTION", 0.3),
		RandomSeed:   getEnvAsInt64WithDefault("RANDOM_SEED", 0),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer,
// returning the default if unset and failing fast if set but malformed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsInt64WithDefault retrieves an environment variable as an int64,
// returning the default if unset and failing fast if set but malformed.
func getEnvAsInt64WithDefault(key string, defaultValue int64) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves an environment variable as a float64,
// returning the default if unset and failing fast if set but malformed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}
