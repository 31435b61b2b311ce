package env

import (
	"fmt"
	"os"
	"roulette_patterns/internal/config"
	"time"
)

const (
	sessionIdleTTLEnvName       = "SESSION_IDLE_TTL"
	sessionSweepIntervalEnvName = "SESSION_SWEEP_INTERVAL"

	defaultSessionIdleTTL       = 2 * time.Hour
	defaultSessionSweepInterval = time.Minute
)

type sessionConfig struct {
	idleTTL       time.Duration
	sweepInterval time.Duration
}

// NewSessionConfig Переменные необязательные, без них берутся значения по умолчанию
func NewSessionConfig() (config.SessionConfig, error) {
	idleTTL, err := durationFromEnv(sessionIdleTTLEnvName, defaultSessionIdleTTL)
	if err != nil {
		return nil, err
	}

	sweepInterval, err := durationFromEnv(sessionSweepIntervalEnvName, defaultSessionSweepInterval)
	if err != nil {
		return nil, err
	}
	if sweepInterval <= 0 {
		return nil, fmt.Errorf("%s must be positive", sessionSweepIntervalEnvName)
	}

	return &sessionConfig{
		idleTTL:       idleTTL,
		sweepInterval: sweepInterval,
	}, nil
}

func (cfg *sessionConfig) IdleTTL() time.Duration {
	return cfg.idleTTL
}

func (cfg *sessionConfig) SweepInterval() time.Duration {
	return cfg.sweepInterval
}

func durationFromEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
