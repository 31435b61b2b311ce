package pattern

import (
	"roulette_patterns/internal/model"
)

// Tracker Счётчики серий по четырём измерениям.
// Состояние всегда можно восстановить переигрыванием последовательности через Replay
type Tracker struct {
	streaks model.Streaks
}

func NewTracker() *Tracker {
	return &Tracker{streaks: model.EmptyStreaks()}
}

// Reset Обнуляет все серии
func (t *Tracker) Reset() {
	t.streaks = model.EmptyStreaks()
}

// Snapshot Копия текущих серий
func (t *Tracker) Snapshot() model.Streaks {
	return t.streaks
}

// Apply Учитывает очередное число. Зеро сбрасывает все серии.
// Число должно быть уже проверено через ValidateOutcome
func (t *Tracker) Apply(n int) {
	if n == 0 {
		t.Reset()
		return
	}
	t.apply(Classify(n))
}

// Replay Пересчитывает серии с нуля по всей последовательности. O(n)
func (t *Tracker) Replay(sequence []int) {
	t.Reset()
	for _, n := range sequence {
		t.Apply(n)
	}
}

func (t *Tracker) apply(c model.Classification) {
	t.applyColor(c.Color)
	t.applyParity(c.Parity)
	t.applyDozen(c.Dozen)
	t.applyDiagonal(c.Diagonal)
}

func (t *Tracker) applyColor(label model.Color) {
	s := &t.streaks.Color
	if s.Active == label {
		s.Count++
		return
	}
	s.Active = label
	s.Count = 1
}

func (t *Tracker) applyParity(label model.Parity) {
	s := &t.streaks.Parity
	if s.Active == label {
		s.Count++
		return
	}
	s.Active = label
	s.Count = 1
}

// applyDozen Серия может охватывать не больше двух дюжин.
// Третья дюжина не сдвигает окно, а начинает серию заново с одной дюжиной
func (t *Tracker) applyDozen(label model.Dozen) {
	s := &t.streaks.Dozen
	switch {
	case s.Active.Len() == 0:
		s.Active = model.NewDozenSet(label)
		s.Count = 1
	case s.Active.Has(label):
		s.Count++
	case s.Active.Len() >= 2:
		s.Active = model.NewDozenSet(label)
		s.Count = 1
	default:
		s.Active = s.Active.Add(label)
		s.Count++
	}
}

// applyDiagonal Число из обоих секторов продолжает текущую диагональ,
// а если серии нет, начинает diagonal_1. Число вне секторов обнуляет серию
func (t *Tracker) applyDiagonal(label model.Diagonal) {
	s := &t.streaks.Diagonal
	switch label {
	case model.DiagonalBoth:
		if s.Active == model.Diagonal1 || s.Active == model.Diagonal2 {
			s.Count++
			return
		}
		s.Active = model.Diagonal1
		s.Count = 1
	case model.DiagonalNone:
		s.Active = model.DiagonalNone
		s.Count = 0
	case s.Active:
		s.Count++
	default:
		s.Active = label
		s.Count = 1
	}
}
