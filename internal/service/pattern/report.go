package pattern

import (
	"context"
	"roulette_patterns/internal/i18n"
	"roulette_patterns/internal/model"

	"golang.org/x/text/language"
)

func (s *serv) Sequence(ctx context.Context) ([]int, error) {
	a, _, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}
	return a.Sequence(), nil
}

// Recent Последние числа, самое свежее первым. limit <= 0 означает значение по умолчанию
func (s *serv) Recent(ctx context.Context, limit int) ([]int, error) {
	a, _, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}
	return a.Recent(clampRecentLimit(limit)), nil
}

func (s *serv) History(ctx context.Context) ([]model.HistoryEntry, error) {
	a, _, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}
	return a.History(), nil
}

func (s *serv) Streaks(ctx context.Context) (*model.Streaks, error) {
	a, _, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}
	st := a.Streaks()
	return &st, nil
}

// Recommendations Рекомендации с текстом на выбранном языке
func (s *serv) Recommendations(ctx context.Context, th model.Thresholds, lang language.Tag) ([]model.Recommendation, error) {
	if err := ValidateThresholds(th, s.thresholdCfg); err != nil {
		return nil, err
	}

	a, _, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}

	return Render(i18n.Printer(lang), a.Recommendations(th)), nil
}

func (s *serv) Statistics(ctx context.Context) (*model.Statistics, error) {
	a, _, err := s.analyzer(ctx)
	if err != nil {
		return nil, err
	}
	st := a.Statistics()
	return &st, nil
}
