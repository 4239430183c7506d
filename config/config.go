// Package config loads the settings of the mazepath driver from the
// environment, after an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvMazeFile   = "MAZE_FILE"
	EnvAlgorithms = "MAZE_ALGORITHMS"
	EnvLogLevel   = "LOG_LEVEL"
	EnvColor      = "MAZE_COLOR"
)

// Algorithm names accepted in MAZE_ALGORITHMS.
const (
	DFS = "dfs"
	BFS = "bfs"
)

// Color modes accepted in MAZE_COLOR.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig is returned when a variable holds an unusable value.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the driver's configuration values.
type Config struct {
	MazeFile   string   // YAML maze document; empty selects the built-in sample
	Algorithms []string // pathfinders to run, in order
	LogLevel   string   // logrus level name
	Color      string   // auto, always or never
}

// Load reads the .env files (missing files are ignored) and then the
// process environment. Values already set in the environment win over .env.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		MazeFile: getEnvWithDefault(EnvMazeFile, ""),
		LogLevel: strings.ToLower(getEnvWithDefault(EnvLogLevel, "info")),
		Color:    strings.ToLower(getEnvWithDefault(EnvColor, ColorAuto)),
	}

	algos, err := parseAlgorithms(getEnvWithDefault(EnvAlgorithms, DFS+","+BFS))
	if err != nil {
		return Config{}, err
	}
	cfg.Algorithms = algos

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("%w: %s=%q, want auto, always or never", ErrInvalidConfig, EnvColor, cfg.Color)
	}

	return cfg, nil
}

// parseAlgorithms splits a comma separated list, dropping blanks and duplicates.
func parseAlgorithms(raw string) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || seen[name] {
			continue
		}
		if name != DFS && name != BFS {
			return nil, fmt.Errorf("%w: %s contains unknown algorithm %q", ErrInvalidConfig, EnvAlgorithms, name)
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidConfig, EnvAlgorithms)
	}
	return out, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
