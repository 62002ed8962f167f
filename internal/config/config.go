// Package config loads command line defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvOutput      = "PDFPACKMAN_OUTPUT"
	EnvDPI         = "PDFPACKMAN_DPI"
	EnvPageSize    = "PDFPACKMAN_PAGE_SIZE"
	EnvMargin      = "PDFPACKMAN_MARGIN"
	EnvConcurrency = "PDFPACKMAN_CONCURRENCY"
)

// Config holds the defaults applied before flags are parsed
type Config struct {
	Output      string
	DPI         float64
	PageSize    string
	Margin      float64
	Concurrency int
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Output:   "output.pdf",
		DPI:      300,
		PageSize: "a4",
	}
}

// Load reads envFile (if it exists) into the process environment and
// returns the defaults overridden by PDFPACKMAN_* variables. Variables
// already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()
	cfg.Output = getEnvOrDefault(EnvOutput, cfg.Output)
	cfg.PageSize = getEnvOrDefault(EnvPageSize, cfg.PageSize)

	var err error
	if cfg.DPI, err = getEnvAsFloatOrDefault(EnvDPI, cfg.DPI); err != nil {
		return Config{}, err
	}
	if cfg.Margin, err = getEnvAsFloatOrDefault(EnvMargin, cfg.Margin); err != nil {
		return Config{}, err
	}
	if cfg.Concurrency, err = getEnvAsIntOrDefault(EnvConcurrency, cfg.Concurrency); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
