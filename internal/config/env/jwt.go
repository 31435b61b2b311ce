package env

import (
	"fmt"
	"os"
	"roulette_patterns/internal/config"
	"time"
)

const (
	sessionTokenKeyEnvName      = "SESSION_TOKEN_SECRET"
	sessionTokenDurationEnvName = "SESSION_TOKEN_DURATION"
)

type jwtConfig struct {
	sessionTokenSecretKey string
	sessionTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(sessionTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("session token secret key not found")
	}

	duration := os.Getenv(sessionTokenDurationEnvName)
	if len(duration) == 0 {
		return nil, fmt.Errorf("session token duration not found")
	}

	durationParsed, err := time.ParseDuration(duration)
	if err != nil {
		return nil, fmt.Errorf("invalid session token duration: %w", err)
	}
	if durationParsed <= 0 {
		return nil, fmt.Errorf("session token duration must be positive")
	}

	return &jwtConfig{
		sessionTokenSecretKey: secret,
		sessionTokenDuration:  durationParsed,
	}, nil
}

func (j *jwtConfig) SessionTokenSecretKey() []byte {
	return []byte(j.sessionTokenSecretKey)
}

func (j *jwtConfig) SessionTokenDuration() time.Duration {
	return j.sessionTokenDuration
}
