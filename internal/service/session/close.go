package session

import (
	"context"
	"errors"
	"roulette_patterns/internal/middleware"

	"go.uber.org/zap"
)

// Close Закрывает сессию из контекста, её журнал и серии отбрасываются
func (s *serv) Close(ctx context.Context) error {
	sessionID, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		return errors.New("session id not found in context")
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.log.Info("session closed", zap.String("session", sessionID))
	return nil
}
