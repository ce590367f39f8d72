package config

import (
	"os"
	"strconv"

	"sudoku-api/pkg/constants"
)

// Config holds the environment-driven knobs for the HTTP collaborator.
// The core solver itself takes no configuration.
type Config struct {
	Port     string
	MaxSteps int
}

// Load reads configuration from environment variables, falling back to
// sane defaults for anything unset.
func Load() (*Config, error) {
	maxSteps, err := strconv.Atoi(getEnv("SOLVER_MAX_STEPS", strconv.Itoa(constants.MaxSolverSteps)))
	if err != nil || maxSteps <= 0 {
		maxSteps = constants.MaxSolverSteps
	}

	return &Config{
		Port:     getEnv("PORT", constants.DefaultPort),
		MaxSteps: maxSteps,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
