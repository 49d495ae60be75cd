package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/joho/godotenv"
)

// Environment variables read by Load
const (
	EnvInsideTemp  = "GOWALL_INSIDE_TEMP"
	EnvOutsideTemp = "GOWALL_OUTSIDE_TEMP"
	EnvInsideRH    = "GOWALL_INSIDE_RH"
	EnvOutsideRH   = "GOWALL_OUTSIDE_RH"
	EnvFraming     = "GOWALL_FRAMING"
	EnvDotEnvFile  = "GOWALL_ENV_FILE"
)

// Config holds the defaults used when a command does not set a value
type Config struct {
	Conditions wall.BoundaryConditions
	Framing    wall.FramingType
}

// Default returns the built-in defaults
func Default() Config {
	return Config{
		Conditions: wall.DefaultConditions,
		Framing:    wall.FramingNone,
	}
}

// Load reads defaults from the environment, after loading a .env file
// (or the file named by GOWALL_ENV_FILE) if one exists. Variables already
// set in the environment are not overridden by the file.
func Load() (Config, error) {
	path := os.Getenv(EnvDotEnvFile)
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only
func FromEnv() (Config, error) {
	cfg := Default()

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvInsideTemp, &cfg.Conditions.InsideTemp},
		{EnvOutsideTemp, &cfg.Conditions.OutsideTemp},
		{EnvInsideRH, &cfg.Conditions.InsideRH},
		{EnvOutsideRH, &cfg.Conditions.OutsideRH},
	}
	for _, f := range floats {
		raw, ok := os.LookupEnv(f.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = v
	}

	if raw := os.Getenv(EnvFraming); raw != "" {
		t := wall.FramingType(raw)
		if !t.Known() {
			return Config{}, fmt.Errorf("%s: unknown framing type %q", EnvFraming, raw)
		}
		cfg.Framing = t
	}

	return cfg, nil
}
