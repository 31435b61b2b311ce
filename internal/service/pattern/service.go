package pattern

import (
	"context"
	"errors"
	"fmt"
	"roulette_patterns/internal/config"
	"roulette_patterns/internal/middleware"
	"roulette_patterns/internal/model"
	"roulette_patterns/internal/repository"
	"roulette_patterns/internal/service"

	"go.uber.org/zap"
)

const (
	// Сколько последних чисел отдаём по умолчанию и максимум
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

type serv struct {
	sessionRepo  repository.SessionRepository[*Analyzer]
	thresholdCfg config.ThresholdConfig
	log          *zap.Logger
}

// NewPatternService Сервис анализа серий поверх реестра сессий
func NewPatternService(
	sessionRepo repository.SessionRepository[*Analyzer],
	thresholdCfg config.ThresholdConfig,
	log *zap.Logger,
) service.PatternService {
	return &serv{
		sessionRepo:  sessionRepo,
		thresholdCfg: thresholdCfg,
		log:          log,
	}
}

// analyzer Анализатор сессии из контекста
func (s *serv) analyzer(ctx context.Context) (*Analyzer, string, error) {
	sessionID, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		return nil, "", errors.New("session id not found in context")
	}

	a, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, sessionID, err
	}
	return a, sessionID, nil
}

func (s *serv) DefaultThresholds() model.Thresholds {
	return s.thresholdCfg.Defaults()
}

// ValidateThresholds Проверяет пороги по диапазонам из конфига
func ValidateThresholds(th model.Thresholds, cfg config.ThresholdConfig) error {
	checks := []struct {
		name   string
		value  int
		bounds model.ThresholdBounds
	}{
		{"color_parity", th.ColorParity, cfg.ColorParity()},
		{"dozen", th.Dozen, cfg.Dozen()},
		{"diagonal", th.Diagonal, cfg.Diagonal()},
	}
	for _, c := range checks {
		if c.value < c.bounds.Min || c.value > c.bounds.Max {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d",
				model.ErrThresholdOutOfRange, c.name, c.bounds.Min, c.bounds.Max, c.value)
		}
	}
	return nil
}

func clampRecentLimit(limit int) int {
	if limit <= 0 {
		return defaultRecentLimit
	}
	if limit > maxRecentLimit {
		return maxRecentLimit
	}
	return limit
}
