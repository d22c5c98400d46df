package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindows(t *testing.T) {
	items := make([]int, 19)
	for i := range items {
		items[i] = i + 1
	}

	first := Paginate(items, 1, QuestionsPerPage)
	assert.Len(t, first, 10)
	assert.Equal(t, 1, first[0])
	assert.Equal(t, 10, first[9])

	second := Paginate(items, 2, QuestionsPerPage)
	assert.Len(t, second, 9)
	assert.Equal(t, 11, second[0])
	assert.Equal(t, 19, second[8])
}

func TestPaginateBeyondEnd(t *testing.T) {
	items := []string{"a", "b", "c"}

	result := Paginate(items, 2, QuestionsPerPage)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestPaginateAtMostPageSize(t *testing.T) {
	items := make([]int, 57)
	for page := 1; page <= 7; page++ {
		window := Paginate(items, page, QuestionsPerPage)
		assert.LessOrEqual(t, len(window), QuestionsPerPage)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]Question{}, 1, QuestionsPerPage))
}
