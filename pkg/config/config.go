// Package config loads the demo CLI's configuration from environment
// variables. The library itself (internal/tree) takes no configuration of
// its own; this exists only for cmd/btreeset-cli.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arboriq/btreeset/pkg/logger"
)

// Config holds the CLI's configuration.
type Config struct {
	TreeDegree int          // minimum degree passed to tree.NewOrderedTree
	LogLevel   logger.Level // logging verbosity
}

// Load reads configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		TreeDegree: 3,
		LogLevel:   logger.Info,
	}

	if degreeStr := os.Getenv("TREE_DEGREE"); degreeStr != "" {
		degree, err := strconv.Atoi(degreeStr)
		if err != nil || degree < 2 {
			return nil, fmt.Errorf("invalid TREE_DEGREE: %s (must be an integer >= 2)", degreeStr)
		}
		cfg.TreeDegree = degree
	}

	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		logLevel, err := logger.ParseLevel(logLevelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %s", logLevelStr)
		}
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}
