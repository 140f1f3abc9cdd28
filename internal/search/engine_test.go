package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"batched/internal/ingredient"
)

func testCatalog() *ingredient.Catalog {
	return ingredient.NewCatalog([]ingredient.CatalogEntry{
		{Name: "Chicken", Slug: "chicken", Category: "Meat"},
		{Name: "Chicken Breast", Slug: "chicken-breast", Category: "Meat"},
		{Name: "Chickpeas", Slug: "chickpeas", Category: "Beans & Legumes"},
		{Name: "Goat Cheese", Slug: "goat-cheese", Category: "Cheeses"},
		{Name: "Oat Bran", Slug: "oat-bran", Category: "Grains"},
		{Name: "Steel Cut Oats", Slug: "steel-cut-oats", Category: "Grains"},
		{Name: "Tomatoes", Slug: "tomatoes", Category: "Vegetables"},
	})
}

func resultNames(entries []ingredient.CatalogEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestSearch_WordBoundaryBeatsSubstring(t *testing.T) {
	engine := NewEngine(testCatalog())

	// Plain substring search would put "Goat Cheese" in front of the actual
	// oat products. The tiered scorer must not.
	names := resultNames(engine.Search("oat", 0))
	assert.Equal(t, []string{"Oat Bran", "Steel Cut Oats", "Goat Cheese"}, names)
}

func TestSearch_SynonymResolvesToCanonicalEntry(t *testing.T) {
	engine := NewEngine(testCatalog())

	names := resultNames(engine.Search("garbanzo beans", 0))
	assert.Equal(t, []string{"Chickpeas"}, names)
}

func TestSearch_TypoToleranceFallback(t *testing.T) {
	engine := NewEngine(testCatalog())

	// No name contains "chiken", so only the approximate pass can find it.
	// "Chickpeas" is two or more edits away and stays out.
	names := resultNames(engine.Search("chiken", 0))
	assert.Equal(t, []string{"Chicken", "Chicken Breast"}, names)
}

func TestSearch_LimitTruncatesAfterRanking(t *testing.T) {
	engine := NewEngine(testCatalog())

	names := resultNames(engine.Search("oat", 2))
	assert.Equal(t, []string{"Oat Bran", "Steel Cut Oats"}, names)
}

func TestSearch_EmptyQuery(t *testing.T) {
	engine := NewEngine(testCatalog())

	assert.Empty(t, engine.Search("", 0))
	assert.Empty(t, engine.Search("   ", 0))
}

func TestSearch_NoMatches(t *testing.T) {
	engine := NewEngine(testCatalog())

	assert.Empty(t, engine.Search("xylophone", 0))
}

func TestSearch_Deterministic(t *testing.T) {
	engine := NewEngine(testCatalog())

	first := resultNames(engine.Search("chicken", 0))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, resultNames(engine.Search("chicken", 0)))
	}
}

func TestSearch_DuplicateSlugAppearsOnce(t *testing.T) {
	catalog := ingredient.NewCatalog([]ingredient.CatalogEntry{
		{Name: "Oat Bran", Slug: "oat-bran", Category: "Grains"},
		{Name: "Oat Bran", Slug: "oat-bran", Category: "Cereals"},
	})
	engine := NewEngine(catalog)

	assert.Equal(t, []string{"Oat Bran"}, resultNames(engine.Search("oat", 0)))
}

// fixedApproximator always returns the same matches, for exercising the
// fallback wiring without depending on edit-distance behavior.
type fixedApproximator struct {
	matches []ApproxMatch
}

func (f *fixedApproximator) Search(query string, limit int) []ApproxMatch {
	return f.matches
}

func TestSearch_ApproximatorSkippedWhenLimitFilled(t *testing.T) {
	approx := &fixedApproximator{matches: []ApproxMatch{{Index: 6, Score: 0.01}}}
	engine := NewEngine(testCatalog(), WithApproximator(approx))

	// "oat" fills the limit of 3 structurally, so Tomatoes must not sneak in
	// even with a better score.
	names := resultNames(engine.Search("oat", 3))
	assert.Equal(t, []string{"Oat Bran", "Steel Cut Oats", "Goat Cheese"}, names)
}

func TestSearch_ApproximatorResultsDeduped(t *testing.T) {
	approx := &fixedApproximator{matches: []ApproxMatch{
		{Index: 4, Score: 0.2}, // Oat Bran, already found structurally
		{Index: 6, Score: 0.2}, // Tomatoes
	}}
	engine := NewEngine(testCatalog(), WithApproximator(approx))

	names := resultNames(engine.Search("oat bran", 0))
	assert.Contains(t, names, "Tomatoes")
	assert.Equal(t, 1, countOf(names, "Oat Bran"))
}

func countOf(names []string, target string) int {
	n := 0
	for _, name := range names {
		if name == target {
			n++
		}
	}
	return n
}

func TestSuggest(t *testing.T) {
	engine := NewEngine(testCatalog())

	suggestion, ok := engine.Suggest("chevre")
	assert.True(t, ok)
	assert.Equal(t, "Goat Cheese", suggestion)

	suggestion, ok = engine.Suggest("garbanzo beans")
	assert.True(t, ok)
	assert.Equal(t, "Chickpeas", suggestion)

	_, ok = engine.Suggest("xylophone")
	assert.False(t, ok)
}

func TestSuggest_SynonymOfMissingCatalogEntry(t *testing.T) {
	// "oj" resolves to "orange juice", which this catalog does not carry.
	engine := NewEngine(testCatalog())

	_, ok := engine.Suggest("oj")
	assert.False(t, ok)
}
