package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickFromEmptyPool(t *testing.T) {
	selector := NewSelector()

	_, ok := selector.Pick(nil)
	assert.False(t, ok)
	_, ok = selector.Pick([]Question{})
	assert.False(t, ok)
}

func TestPickReturnsCandidate(t *testing.T) {
	candidates := []Question{
		{ID: 1}, {ID: 2}, {ID: 3},
	}
	selector := NewSelector()

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		q, ok := selector.Pick(candidates)
		assert.True(t, ok)
		assert.Contains(t, []int{1, 2, 3}, q.ID)
		seen[q.ID] = true
	}
	// 100 draws over 3 candidates: all should appear.
	assert.Len(t, seen, 3)
}

func TestSeededSelectorIsDeterministic(t *testing.T) {
	candidates := make([]Question, 50)
	for i := range candidates {
		candidates[i] = Question{ID: i + 1}
	}

	a := NewSeededSelector(99)
	b := NewSeededSelector(99)
	for i := 0; i < 20; i++ {
		qa, _ := a.Pick(candidates)
		qb, _ := b.Pick(candidates)
		assert.Equal(t, qa.ID, qb.ID)
	}
}

func TestMatchesCaseInsensitive(t *testing.T) {
	q := Question{Question: "What is the Title of this painting?"}

	assert.True(t, Matches(q, "title"))
	assert.True(t, Matches(q, "TITLE"))
	assert.True(t, Matches(q, "painting"))
	assert.False(t, Matches(q, "sculpture"))
	assert.True(t, Matches(q, ""), "empty term matches everything")
}
