package sequence_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreAppendAndRemoveLast(t *testing.T) {
	s := NewSequenceStore()
	assert.False(t, s.RemoveLast())
	assert.Equal(t, 0, s.Len())

	s.Append(5)
	s.Append(0)
	s.Append(36)
	assert.Equal(t, []int{5, 0, 36}, s.Values())

	assert.True(t, s.RemoveLast())
	assert.Equal(t, []int{5, 0}, s.Values())
	assert.Equal(t, 2, s.Len())
}

func TestStoreValuesIsACopy(t *testing.T) {
	s := NewSequenceStore()
	s.Append(1)

	v := s.Values()
	v[0] = 2
	assert.Equal(t, []int{1}, s.Values())
}

func TestStoreLast(t *testing.T) {
	s := NewSequenceStore()
	for _, n := range []int{1, 2, 3, 4} {
		s.Append(n)
	}

	assert.Equal(t, []int{4, 3}, s.Last(2))
	assert.Equal(t, []int{4, 3, 2, 1}, s.Last(10))
	assert.Empty(t, s.Last(0))
	assert.Empty(t, NewSequenceStore().Last(5))
}
