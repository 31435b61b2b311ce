package config

import (
	"roulette_patterns/internal/model"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type JWTConfig interface {
	SessionTokenSecretKey() []byte
	SessionTokenDuration() time.Duration
}

type SessionConfig interface {
	IdleTTL() time.Duration
	SweepInterval() time.Duration
}

type LoggerConfig interface {
	Level() string
	Development() bool
}

// ThresholdConfig Диапазоны и значения по умолчанию для порогов рекомендаций
type ThresholdConfig interface {
	ColorParity() model.ThresholdBounds
	Dozen() model.ThresholdBounds
	Diagonal() model.ThresholdBounds
	Defaults() model.Thresholds
}
