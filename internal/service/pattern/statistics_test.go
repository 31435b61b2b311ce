package pattern

import (
	"testing"

	"roulette_patterns/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeStatistics(t *testing.T) {
	st := ComputeStatistics([]int{0, 1, 2})

	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 1, st.Red.Count)
	assert.InDelta(t, 33.33, st.Red.Percent, 0.01)
	assert.Equal(t, 1, st.Black.Count)
	assert.InDelta(t, 33.33, st.Black.Percent, 0.01)
	assert.Equal(t, 1, st.Zero.Count)
	assert.InDelta(t, 33.33, st.Zero.Percent, 0.01)

	// Чётность считается только по ненулевым
	assert.Equal(t, model.Tally{Count: 1, Percent: 50}, st.Even)
	assert.Equal(t, model.Tally{Count: 1, Percent: 50}, st.Odd)

	assert.Equal(t, 2, st.FirstDozen.Count)
	assert.Equal(t, 0, st.SecondDozen.Count)
	assert.Equal(t, 0, st.ThirdDozen.Count)
}

func TestComputeStatisticsEmptyDenominators(t *testing.T) {
	assert.Equal(t, model.Statistics{}, ComputeStatistics(nil))

	st := ComputeStatistics([]int{0, 0})
	assert.Equal(t, model.Tally{Count: 2, Percent: 100}, st.Zero)
	assert.Equal(t, model.Tally{}, st.Even)
	assert.Equal(t, model.Tally{}, st.Odd)
}

func TestComputeStatisticsDozens(t *testing.T) {
	st := ComputeStatistics([]int{1, 13, 25, 36})
	assert.Equal(t, model.Tally{Count: 1, Percent: 25}, st.FirstDozen)
	assert.Equal(t, model.Tally{Count: 1, Percent: 25}, st.SecondDozen)
	assert.Equal(t, model.Tally{Count: 2, Percent: 50}, st.ThirdDozen)
}
