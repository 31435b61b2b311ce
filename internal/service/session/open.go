package session

import (
	"context"
	"roulette_patterns/internal/model"
	"roulette_patterns/internal/repository/sequence_repo"
	"roulette_patterns/internal/service/pattern"
	"roulette_patterns/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Open Создаёт сессию с пустым журналом и выдаёт токен
func (s *serv) Open(ctx context.Context) (*model.Session, error) {
	now := s.now()

	session := &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.jwtConfig.SessionTokenDuration()),
	}

	// 1. Токен сессии
	sessionToken, err := token.GenerateSessionToken(session.ID, s.jwtConfig.SessionTokenSecretKey(), session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	session.Token = sessionToken

	// 2. Состояние сессии: свой журнал и свой трекер
	analyzer := pattern.NewAnalyzer(sequence_repo.NewSequenceStore())
	if err := s.sessionRepo.Create(ctx, session, analyzer); err != nil {
		return nil, err
	}

	s.log.Info("session opened", zap.String("session", session.ID), zap.Time("expires_at", session.ExpiresAt))

	return session, nil
}
