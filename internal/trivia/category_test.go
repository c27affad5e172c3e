package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCategories() []Category {
	return []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

func TestFilterByCategoryUnknownIsNotFound(t *testing.T) {
	_, err := FilterByCategory(sampleBank(), sampleCategories(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilterByCategoryKnownButEmpty(t *testing.T) {
	got, err := FilterByCategory(sampleBank(), sampleCategories(), 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByCategoryScopesAndOrders(t *testing.T) {
	shuffled := []Question{
		{ID: 6, Category: 5},
		{ID: 2, Category: 4},
		{ID: 4, Category: 5},
	}
	got, err := FilterByCategory(shuffled, sampleCategories(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, ids(got))
}

func TestDropOrphans(t *testing.T) {
	bank := append(sampleBank(), Question{ID: 77, Question: "Orphan?", Category: 42})
	kept := DropOrphans(bank, sampleCategories())
	assert.NotContains(t, ids(kept), 77)
	assert.Len(t, kept, len(sampleBank()))
}
