package service

import (
	"context"
	"roulette_patterns/internal/model"

	"golang.org/x/text/language"
)

// PatternService Операции над сессией из контекста запроса
type PatternService interface {
	AddOutcome(ctx context.Context, n int) (*model.Snapshot, error)
	RemoveLast(ctx context.Context) (*model.Snapshot, error)

	Sequence(ctx context.Context) ([]int, error)
	Recent(ctx context.Context, limit int) ([]int, error)
	History(ctx context.Context) ([]model.HistoryEntry, error)
	Streaks(ctx context.Context) (*model.Streaks, error)
	Recommendations(ctx context.Context, th model.Thresholds, lang language.Tag) ([]model.Recommendation, error)
	Statistics(ctx context.Context) (*model.Statistics, error)

	DefaultThresholds() model.Thresholds
}

type SessionService interface {
	Open(ctx context.Context) (*model.Session, error)
	Close(ctx context.Context) error
}
