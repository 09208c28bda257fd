// Package config reads the simulator's settings from the environment.
package config

import (
	"os"
	"strconv"

	"bellsim/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Simulation SimulationConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// SimulationConfig holds experiment run settings
type SimulationConfig struct {
	Trials   int
	Seed     int64
	Workers  int
	BinWidth float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Simulation: SimulationConfig{
			Trials:   500_000,
			Seed:     42,
			Workers:  0,
			BinWidth: 0.01,
		},
	}

	var err error
	if config.Simulation.Trials, err = getEnvInt("TRIALS", config.Simulation.Trials); err != nil {
		return nil, err
	}
	if config.Simulation.Trials <= 0 {
		return nil, errors.ConfigInvalid("TRIALS must be positive")
	}
	if config.Simulation.Seed, err = getEnvInt64("SEED", config.Simulation.Seed); err != nil {
		return nil, err
	}
	if config.Simulation.Workers, err = getEnvInt("WORKERS", config.Simulation.Workers); err != nil {
		return nil, err
	}
	if config.Simulation.BinWidth, err = getEnvFloat("BIN_WIDTH", config.Simulation.BinWidth); err != nil {
		return nil, err
	}
	if config.Simulation.BinWidth <= 0 {
		return nil, errors.ConfigInvalid("BIN_WIDTH must be positive")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer, got " + v)
	}
	return n, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer, got " + v)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be a number, got " + v)
	}
	return f, nil
}
