package session

import (
	"roulette_patterns/internal/config"
	"roulette_patterns/internal/repository"
	"roulette_patterns/internal/service"
	"roulette_patterns/internal/service/pattern"
	"time"

	"go.uber.org/zap"
)

type serv struct {
	sessionRepo repository.SessionRepository[*pattern.Analyzer]
	jwtConfig   config.JWTConfig
	log         *zap.Logger
	now         func() time.Time
}

func NewSessionService(
	sessionRepo repository.SessionRepository[*pattern.Analyzer],
	jwtConfig config.JWTConfig,
	log *zap.Logger,
) service.SessionService {
	return &serv{
		sessionRepo: sessionRepo,
		jwtConfig:   jwtConfig,
		log:         log,
		now:         time.Now,
	}
}
