package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("chicken", "chicken"))
	assert.InDelta(t, 1.0-1.0/7.0, similarity("chiken", "chicken"), 1e-9)
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 0.0, similarity("", "abc"))
}

func TestLevenshteinIndex_SingleTypo(t *testing.T) {
	ix := newLevenshteinIndex([]string{
		"Chicken Meat",
		"Chickpeas Beans",
		"Broccoli Vegetables",
	}, DefaultApproxThreshold)

	matches := ix.Search("chiken", 10)
	assert.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Index)
	assert.InDelta(t, 1.0/7.0, matches[0].Score, 1e-9)
}

func TestLevenshteinIndex_ThresholdExcludesDistantWords(t *testing.T) {
	ix := newLevenshteinIndex([]string{"Broccoli"}, DefaultApproxThreshold)
	assert.Empty(t, ix.Search("chicken", 10))
}

func TestLevenshteinIndex_MultiTokenQueryAverages(t *testing.T) {
	// Both query tokens land exactly, so the score is a perfect 0.
	ix := newLevenshteinIndex([]string{"Chickpeas garbanzo beans"}, DefaultApproxThreshold)

	matches := ix.Search("garbanzo beans", 10)
	assert.Len(t, matches, 1)
	assert.Equal(t, 0.0, matches[0].Score)
}

func TestLevenshteinIndex_SortAndLimit(t *testing.T) {
	ix := newLevenshteinIndex([]string{
		"chiken",  // one edit from the query
		"chicken", // exact
	}, DefaultApproxThreshold)

	matches := ix.Search("chicken", 10)
	assert.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Index)
	assert.Equal(t, 0, matches[1].Index)

	assert.Len(t, ix.Search("chicken", 1), 1)
}

func TestLevenshteinIndex_EmptyQuery(t *testing.T) {
	ix := newLevenshteinIndex([]string{"Chicken"}, DefaultApproxThreshold)
	assert.Empty(t, ix.Search("   ", 10))
}
