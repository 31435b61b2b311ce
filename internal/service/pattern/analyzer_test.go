package pattern

import (
	"sync"
	"testing"

	"roulette_patterns/internal/model"
	"roulette_patterns/internal/repository/sequence_repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T, numbers ...int) *Analyzer {
	t.Helper()
	a := NewAnalyzer(sequence_repo.NewSequenceStore())
	for _, n := range numbers {
		require.NoError(t, a.AddOutcome(n))
	}
	return a
}

func TestAnalyzerAddOutcome(t *testing.T) {
	a := newAnalyzer(t, 1, 3, 5)

	assert.Equal(t, []int{1, 3, 5}, a.Sequence())
	assert.Equal(t, model.ColorStreak{Count: 3, Active: model.ColorRed}, a.Streaks().Color)
}

func TestAnalyzerRejectsOutOfRange(t *testing.T) {
	a := newAnalyzer(t, 1)

	for _, n := range []int{-1, 37} {
		err := a.AddOutcome(n)
		assert.ErrorIs(t, err, model.ErrOutcomeOutOfRange)
	}
	assert.Equal(t, []int{1}, a.Sequence())
}

func TestAnalyzerRemoveLast(t *testing.T) {
	t.Run("empty is a no-op", func(t *testing.T) {
		a := newAnalyzer(t)
		assert.False(t, a.RemoveLast())
		assert.Empty(t, a.Sequence())
		assert.Equal(t, model.EmptyStreaks(), a.Streaks())
	})

	t.Run("broken streak is restored", func(t *testing.T) {
		a := newAnalyzer(t, 1, 3, 2)
		require.Equal(t, model.ColorStreak{Count: 1, Active: model.ColorBlack}, a.Streaks().Color)

		assert.True(t, a.RemoveLast())
		assert.Equal(t, []int{1, 3}, a.Sequence())
		assert.Equal(t, model.ColorStreak{Count: 2, Active: model.ColorRed}, a.Streaks().Color)
	})

	t.Run("removing zero restores all streaks", func(t *testing.T) {
		a := newAnalyzer(t, 1, 13, 5, 0)
		require.Equal(t, model.EmptyStreaks(), a.Streaks())

		a.RemoveLast()
		assert.Equal(t, newAnalyzer(t, 1, 13, 5).Streaks(), a.Streaks())
		assert.Equal(t, 3, a.Streaks().Dozen.Count)
	})

	t.Run("matches a fresh analyzer over the prefix", func(t *testing.T) {
		seq := []int{7, 9, 0, 12, 14, 30, 25, 26, 2, 5, 8, 19}
		a := newAnalyzer(t, seq...)
		for i := len(seq) - 1; i >= 0; i-- {
			a.RemoveLast()
			assert.Equal(t, newAnalyzer(t, seq[:i]...).Streaks(), a.Streaks(), "prefix %v", seq[:i])
		}
	})
}

func TestNewAnalyzerReplaysExistingStore(t *testing.T) {
	store := sequence_repo.NewSequenceStore()
	for _, n := range []int{2, 4, 6} {
		store.Append(n)
	}

	a := NewAnalyzer(store)
	assert.Equal(t, model.ColorStreak{Count: 3, Active: model.ColorBlack}, a.Streaks().Color)
}

func TestAnalyzerRecentAndHistory(t *testing.T) {
	a := newAnalyzer(t, 0, 1, 2, 3)

	assert.Equal(t, []int{3, 2}, a.Recent(2))
	assert.Equal(t, []int{3, 2, 1, 0}, a.Recent(10))

	history := a.History()
	require.Len(t, history, 4)
	assert.Equal(t, 1, history[0].Number)
	assert.Equal(t, 3, history[0].Outcome)
	assert.Equal(t, model.ColorRed, history[0].Color)
	assert.Equal(t, model.Diagonal2, history[0].Diagonal)
	assert.Equal(t, 4, history[3].Number)
	assert.Equal(t, 0, history[3].Outcome)
	assert.Equal(t, model.ColorGreen, history[3].Color)
}

func TestAnalyzerRecommendationsAndStatistics(t *testing.T) {
	a := newAnalyzer(t, 1, 3, 5, 7, 9)

	recs := ofKind(a.Recommendations(defaultThresholds), model.RecommendationColor)
	require.Len(t, recs, 1)
	assert.Equal(t, "black", recs[0].Suggested)

	st := a.Statistics()
	assert.Equal(t, model.Tally{Count: 5, Percent: 100}, st.Red)
}

func TestAnalyzerConcurrentAccess(t *testing.T) {
	a := newAnalyzer(t)

	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = a.AddOutcome((w*perWriter + i) % 37)
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				snap := a.Snapshot()
				// Снапшот всегда согласован с журналом
				replayed := NewTracker()
				replayed.Replay(snap.Sequence)
				if replayed.Snapshot() != snap.Streaks {
					t.Errorf("inconsistent snapshot for %v", snap.Sequence)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, a.Sequence(), writers*perWriter)
}
