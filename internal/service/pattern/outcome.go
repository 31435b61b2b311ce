package pattern

import (
	"context"
	"roulette_patterns/internal/model"

	"go.uber.org/zap"
)

// AddOutcome Записывает число в сессию и возвращает новое состояние
func (s *serv) AddOutcome(ctx context.Context, n int) (*model.Snapshot, error) {
	// Проверяем до поиска сессии, чтобы не продлевать её на мусорном запросе
	if err := ValidateOutcome(n); err != nil {
		return nil, err
	}

	a, sessionID, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.AddOutcome(n); err != nil {
		return nil, err
	}

	snap := a.Snapshot()
	s.log.Debug("outcome added",
		zap.String("session", sessionID),
		zap.Int("outcome", n),
		zap.Int("length", len(snap.Sequence)))

	return &snap, nil
}

// RemoveLast Удаляет последнее число. На пустой сессии просто возвращает текущее состояние
func (s *serv) RemoveLast(ctx context.Context) (*model.Snapshot, error) {
	a, sessionID, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}

	removed := a.RemoveLast()

	snap := a.Snapshot()
	s.log.Debug("last outcome removed",
		zap.String("session", sessionID),
		zap.Bool("removed", removed),
		zap.Int("length", len(snap.Sequence)))

	return &snap, nil
}
