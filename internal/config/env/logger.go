package env

import (
	"fmt"
	"os"
	"roulette_patterns/internal/config"
	"strconv"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logDevEnvName   = "LOG_DEVELOPMENT"
)

type loggerConfig struct {
	level       string
	development bool
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}

	dev := false
	if raw := os.Getenv(logDevEnvName); len(raw) != 0 {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logDevEnvName, err)
		}
		dev = parsed
	}

	return &loggerConfig{
		level:       level,
		development: dev,
	}, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func (cfg *loggerConfig) Development() bool {
	return cfg.development
}
