package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "garlic", Normalize("  Garlic  "))
	assert.Equal(t, "olive oil", Normalize("Olive Oil"))
}

func TestNormalize_RegularPlurals(t *testing.T) {
	assert.Equal(t, "carrot", Normalize("Carrots"))
	assert.Equal(t, "egg", Normalize("eggs"))
	assert.Equal(t, "berry", Normalize("Berries"))
	assert.Equal(t, "box", Normalize("Boxes"))
}

func TestNormalize_IrregularPlurals(t *testing.T) {
	assert.Equal(t, "tomato", Normalize("Tomatoes"))
	assert.Equal(t, "potato", Normalize("Potatoes"))
	assert.Equal(t, "leaf", Normalize("Leaves"))
	assert.Equal(t, "half", Normalize("Halves"))
	assert.Equal(t, "loaf", Normalize("Loaves"))
}

func TestNormalize_AlreadySingular(t *testing.T) {
	assert.Equal(t, "cookie", Normalize("Cookie"))
	assert.Equal(t, "milk", Normalize("Milk"))
}

func TestNormalize_DoubleSAndShortWords(t *testing.T) {
	// Words ending in "ss" and very short words keep their trailing "s".
	assert.Equal(t, "watercress", Normalize("Watercress"))
	assert.Equal(t, "as", Normalize("as"))
}

func TestNormalize_SameIdentityAcrossVariants(t *testing.T) {
	// The whole point: different spellings of the same ingredient collapse to
	// one canonical name.
	assert.Equal(t, Normalize("tomato"), Normalize("Tomatoes"))
	assert.Equal(t, Normalize("CARROTS"), Normalize("carrot"))
}
