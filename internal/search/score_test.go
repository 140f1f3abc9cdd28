package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_PrefixBeatsEverything(t *testing.T) {
	score, ok := Score("oat", "Oat Bran")
	assert.True(t, ok)
	assert.Equal(t, 0.00, score)
}

func TestScore_WordPrefix(t *testing.T) {
	score, ok := Score("oat", "Steel Cut Oats")
	assert.True(t, ok)
	assert.Equal(t, 0.05, score)
}

func TestScore_BareSubstring(t *testing.T) {
	// "oat" sits inside "goat" but not at a word boundary, so it lands in the
	// weakest matching tier instead of outranking the real oat products.
	score, ok := Score("oat", "Goat Cheese")
	assert.True(t, ok)
	assert.Equal(t, 0.30, score)
}

func TestScore_MultiTokenAllMatch(t *testing.T) {
	score, ok := Score("cut steel", "Steel Cut Oats")
	assert.True(t, ok)
	assert.Equal(t, 0.08, score)
}

func TestScore_MultiTokenPartialMissIsNotAllTokens(t *testing.T) {
	_, ok := Score("steel iron", "Steel Cut Oats")
	assert.False(t, ok)
}

func TestScore_NoMatch(t *testing.T) {
	_, ok := Score("zucchini", "Oat Bran")
	assert.False(t, ok)
}

func TestScore_CaseInsensitive(t *testing.T) {
	score, ok := Score("OAT", "oat bran")
	assert.True(t, ok)
	assert.Equal(t, 0.00, score)
}

func TestScore_WordSeparators(t *testing.T) {
	// Hyphens, slashes, and commas all delimit words for boundary detection.
	score, ok := Score("purpose", "All-Purpose Flour")
	assert.True(t, ok)
	assert.Equal(t, 0.05, score)

	score, ok = Score("oatmeal", "Oats / Oatmeal")
	assert.True(t, ok)
	assert.Equal(t, 0.05, score)

	score, ok = Score("red", "Bell Peppers, Red")
	assert.True(t, ok)
	assert.Equal(t, 0.05, score)

	// Any whitespace delimits, not just plain spaces.
	score, ok = Score("bran", "Oat\nBran")
	assert.True(t, ok)
	assert.Equal(t, 0.05, score)

	score, ok = Score("bran", "Oat\r\nBran")
	assert.True(t, ok)
	assert.Equal(t, 0.05, score)
}

func TestScore_EveryTierOrdering(t *testing.T) {
	// The same query against progressively weaker candidates yields strictly
	// increasing scores.
	prefix, _ := Score("oat", "Oat Bran")
	wordPrefix, _ := Score("oat", "Steel Cut Oats")
	substring, _ := Score("oat", "Goat Cheese")
	assert.Less(t, prefix, wordPrefix)
	assert.Less(t, wordPrefix, substring)
}
