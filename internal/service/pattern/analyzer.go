package pattern

import (
	"roulette_patterns/internal/model"
	"roulette_patterns/internal/repository"
	"sync"
)

// Analyzer Состояние одной сессии: журнал чисел и счётчики серий.
// Каждое изменение применяется целиком под мьютексом, читатели не видят промежуточного сброса
type Analyzer struct {
	mtx     sync.RWMutex
	seq     repository.SequenceRepository
	tracker *Tracker
}

// NewAnalyzer Создаёт анализатор поверх журнала. Если журнал не пуст, серии пересчитываются
func NewAnalyzer(seq repository.SequenceRepository) *Analyzer {
	a := &Analyzer{
		seq:     seq,
		tracker: NewTracker(),
	}
	if seq.Len() > 0 {
		a.tracker.Replay(seq.Values())
	}
	return a
}

// AddOutcome Записывает число и обновляет серии инкрементально
func (a *Analyzer) AddOutcome(n int) error {
	if err := ValidateOutcome(n); err != nil {
		return err
	}

	a.mtx.Lock()
	defer a.mtx.Unlock()

	a.seq.Append(n)
	a.tracker.Apply(n)
	return nil
}

// RemoveLast Удаляет последнее число и переигрывает оставшийся журнал целиком.
// Прерванную серию нельзя откатить по одному счётчику, поэтому только полный пересчёт
func (a *Analyzer) RemoveLast() bool {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if !a.seq.RemoveLast() {
		return false
	}
	a.tracker.Replay(a.seq.Values())
	return true
}

func (a *Analyzer) Sequence() []int {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	return a.seq.Values()
}

func (a *Analyzer) Streaks() model.Streaks {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	return a.tracker.Snapshot()
}

// Snapshot Журнал и серии, снятые согласованно
func (a *Analyzer) Snapshot() model.Snapshot {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	return model.Snapshot{
		Sequence: a.seq.Values(),
		Streaks:  a.tracker.Snapshot(),
	}
}

// Recommendations Рекомендации по текущим сериям без текста сообщений
func (a *Analyzer) Recommendations(th model.Thresholds) []model.Recommendation {
	return Recommend(a.Streaks(), th)
}

func (a *Analyzer) Statistics() model.Statistics {
	return ComputeStatistics(a.Sequence())
}

// Recent Последние limit чисел, самое свежее первым
func (a *Analyzer) Recent(limit int) []int {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	return a.seq.Last(limit)
}

// History Вся история с метками, самое свежее число первым
func (a *Analyzer) History() []model.HistoryEntry {
	values := a.Sequence()
	history := make([]model.HistoryEntry, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		history = append(history, model.HistoryEntry{
			Number:         len(values) - i,
			Outcome:        values[i],
			Classification: Classify(values[i]),
		})
	}
	return history
}
