package repository

import (
	"context"
	"roulette_patterns/internal/model"
	"time"
)

// SequenceRepository Журнал чисел одной сессии
type SequenceRepository interface {
	Append(n int)
	RemoveLast() bool
	Values() []int
	Last(limit int) []int
	Len() int
}

// SessionRepository Реестр живых сессий и их состояния. Ничего не сохраняет между перезапусками
type SessionRepository[T any] interface {
	Create(ctx context.Context, session *model.Session, state T) error
	Get(ctx context.Context, sessionID string) (T, error)
	Delete(ctx context.Context, sessionID string) error
	// Sweep удаляет сессии, простаивающие дольше TTL или с истёкшим сроком. Возвращает число удалённых
	Sweep(now time.Time) int
}
