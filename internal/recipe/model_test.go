package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidUnit_AcceptsEverySymbol(t *testing.T) {
	for _, u := range Units {
		assert.True(t, ValidUnit(u), "unit %q must be valid", u)
	}
}

func TestValidUnit_RejectsUnknownSymbols(t *testing.T) {
	assert.False(t, ValidUnit("bogus"))
	assert.False(t, ValidUnit(""))
	assert.False(t, ValidUnit("Cup"))  // symbols are lowercase
	assert.False(t, ValidUnit("floz")) // the real symbol is "fl oz"
	assert.False(t, ValidUnit("grams"))
}

func TestUnits_CoverAllThreeFamilies(t *testing.T) {
	assert.Contains(t, Units, UnitPiece)
	assert.Contains(t, Units, UnitCup)
	assert.Contains(t, Units, UnitLb)
	assert.Len(t, Units, 12)
}
