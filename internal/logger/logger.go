package logger

import (
	"fmt"
	"roulette_patterns/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New Собирает zap логгер по конфигу
func New(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level())
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level(), err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development() {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
