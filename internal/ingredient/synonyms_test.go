package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalFor_KnownSynonym(t *testing.T) {
	canonical, ok := CanonicalFor("garbanzo beans")
	assert.True(t, ok)
	assert.Equal(t, "chickpeas", canonical)
}

func TestCanonicalFor_CaseAndWhitespaceInsensitive(t *testing.T) {
	canonical, ok := CanonicalFor("  Garbanzo Beans ")
	assert.True(t, ok)
	assert.Equal(t, "chickpeas", canonical)
}

func TestCanonicalFor_UnknownPhrase(t *testing.T) {
	_, ok := CanonicalFor("flux capacitor")
	assert.False(t, ok)
}

func TestCanonicalFor_CanonicalNameIsNotItsOwnSynonym(t *testing.T) {
	// The table maps alternates to canonicals, not canonicals to themselves.
	_, ok := CanonicalFor("chickpeas")
	assert.False(t, ok)
}

func TestSynonymsFor_KnownCanonical(t *testing.T) {
	synonyms := SynonymsFor("Chickpeas")
	assert.Contains(t, synonyms, "garbanzo beans")
	assert.Contains(t, synonyms, "chick peas")
}

func TestSynonymsFor_UnknownCanonical(t *testing.T) {
	assert.Nil(t, SynonymsFor("gravel"))
}

func TestSynonymTable_ReverseIndexComplete(t *testing.T) {
	// Every registered synonym must resolve back to its canonical.
	for canonical, synonyms := range ingredientSynonyms {
		for _, synonym := range synonyms {
			resolved, ok := CanonicalFor(synonym)
			assert.True(t, ok, "synonym %q is not indexed", synonym)
			assert.Equal(t, canonical, resolved)
		}
	}
}
