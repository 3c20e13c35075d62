package profile

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tastegraph/backend/internal/graph"
)

func TestDiversity_SingleCategoryScoresZero(t *testing.T) {
	repo := &mockGraphRepo{
		categoryCounts: []graph.CategoryCount{
			{Category: "Restaurants", Count: 12},
			{Category: "Sushi", Count: 7},
		},
	}
	orch := newTestOrchestrator(repo, newTestStore())

	diversity, err := orch.DiversityFor(context.Background(), "u-1")
	require.NoError(t, err)

	// Generic categories are removed before scoring; one category left
	assert.Equal(t, map[string]int{"Sushi": 7}, diversity.CategoryCounts)
	assert.Equal(t, 0.0, diversity.Entropy)
}

func TestDiversity_EvenTwoWaySplitIsOneBit(t *testing.T) {
	repo := &mockGraphRepo{
		categoryCounts: []graph.CategoryCount{
			{Category: "Sushi", Count: 4},
			{Category: "Ramen", Count: 4},
		},
	}
	orch := newTestOrchestrator(repo, newTestStore())

	diversity, err := orch.DiversityFor(context.Background(), "u-1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, diversity.Entropy, 1e-12)
}

func TestDiversity_EntropyBounds(t *testing.T) {
	repo := &mockGraphRepo{
		categoryCounts: []graph.CategoryCount{
			{Category: "Sushi", Count: 1},
			{Category: "Ramen", Count: 2},
			{Category: "Thai", Count: 3},
		},
	}
	orch := newTestOrchestrator(repo, newTestStore())

	diversity, err := orch.DiversityFor(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Greater(t, diversity.Entropy, 0.0)
	assert.LessOrEqual(t, diversity.Entropy, math.Log2(3))
}

func TestDiversity_NoCategoriesYieldsEmptyZeroValue(t *testing.T) {
	orch := newTestOrchestrator(&mockGraphRepo{}, newTestStore())

	diversity, err := orch.DiversityFor(context.Background(), "u-new")
	require.NoError(t, err)
	require.NotNil(t, diversity)
	assert.Empty(t, diversity.CategoryCounts)
	assert.Equal(t, 0.0, diversity.Entropy)
}

func TestShannonEntropy_EmptyAndUneven(t *testing.T) {
	assert.Equal(t, 0.0, ShannonEntropy(map[string]int{}))
	assert.Equal(t, 0.0, ShannonEntropy(map[string]int{"Sushi": 100}))

	even := ShannonEntropy(map[string]int{"a": 5, "b": 5})
	uneven := ShannonEntropy(map[string]int{"a": 9, "b": 1})
	assert.Greater(t, even, uneven)
}
