package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"batched/internal/recipe"
)

func TestUnitFamily(t *testing.T) {
	assert.Equal(t, FamilyVolume, UnitFamily(recipe.UnitTsp))
	assert.Equal(t, FamilyVolume, UnitFamily(recipe.UnitCup))
	assert.Equal(t, FamilyVolume, UnitFamily(recipe.UnitFlOz))
	assert.Equal(t, FamilyWeight, UnitFamily(recipe.UnitOz))
	assert.Equal(t, FamilyWeight, UnitFamily(recipe.UnitKilo))
	assert.Equal(t, FamilyCount, UnitFamily(recipe.UnitPiece))
	assert.Equal(t, FamilyCount, UnitFamily(recipe.UnitClove))
}

func TestToBase_Volume(t *testing.T) {
	assert.Equal(t, 96.0, ToBase(2, recipe.UnitCup))
	assert.Equal(t, 9.0, ToBase(3, recipe.UnitTbsp))
	assert.Equal(t, 12.0, ToBase(2, recipe.UnitFlOz))
	assert.Equal(t, 1.5, ToBase(1.5, recipe.UnitTsp))
}

func TestToBase_Weight(t *testing.T) {
	assert.Equal(t, 32.0, ToBase(2, recipe.UnitLb))
	assert.InDelta(t, 3.5274, ToBase(100, recipe.UnitGram), 0.0001)
	assert.InDelta(t, 35.274, ToBase(1, recipe.UnitKilo), 0.0001)
}

func TestToBase_CountPassesThrough(t *testing.T) {
	assert.Equal(t, 3.0, ToBase(3, recipe.UnitPiece))
	assert.Equal(t, 2.0, ToBase(2, recipe.UnitClove))
}

func TestBestVolumeUnit(t *testing.T) {
	amount, unit := BestVolumeUnit(48)
	assert.Equal(t, 1.0, amount)
	assert.Equal(t, recipe.UnitCup, unit)

	// Just under a cup falls back to tablespoons.
	amount, unit = BestVolumeUnit(47.99)
	assert.Equal(t, recipe.UnitTbsp, unit)
	assert.Equal(t, 16.0, amount)

	amount, unit = BestVolumeUnit(2)
	assert.Equal(t, 2.0, amount)
	assert.Equal(t, recipe.UnitTsp, unit)

	amount, unit = BestVolumeUnit(108)
	assert.Equal(t, 2.25, amount)
	assert.Equal(t, recipe.UnitCup, unit)
}

func TestBestWeightUnit(t *testing.T) {
	amount, unit := BestWeightUnit(16)
	assert.Equal(t, 1.0, amount)
	assert.Equal(t, recipe.UnitLb, unit)

	amount, unit = BestWeightUnit(15.9)
	assert.Equal(t, 15.9, amount)
	assert.Equal(t, recipe.UnitOz, unit)

	amount, unit = BestWeightUnit(24)
	assert.Equal(t, 1.5, amount)
	assert.Equal(t, recipe.UnitLb, unit)
}

func TestFromBase(t *testing.T) {
	amount, unit := FromBase(96, FamilyVolume)
	assert.Equal(t, 2.0, amount)
	assert.Equal(t, recipe.UnitCup, unit)

	amount, unit = FromBase(32, FamilyWeight)
	assert.Equal(t, 2.0, amount)
	assert.Equal(t, recipe.UnitLb, unit)

	amount, unit = FromBase(5, FamilyCount)
	assert.Equal(t, 5.0, amount)
	assert.Equal(t, recipe.Unit(""), unit)
}

func TestRoundTripWithinTolerance(t *testing.T) {
	// Converting to the base unit and back to the best display unit must stay
	// within a hundredth of the true total.
	base := ToBase(1, recipe.UnitKilo) // 35.274 oz
	amount, unit := FromBase(base, FamilyWeight)
	assert.Equal(t, recipe.UnitLb, unit)
	assert.InDelta(t, 35.274/16, amount, 0.01)
}

func TestPluralizeUnit(t *testing.T) {
	assert.Equal(t, "cup", PluralizeUnit(1, "cup"))
	assert.Equal(t, "cups", PluralizeUnit(2, "cup"))
	assert.Equal(t, "cups", PluralizeUnit(0.5, "cup"))
	assert.Equal(t, "pieces", PluralizeUnit(3, "piece"))
	assert.Equal(t, "lbs", PluralizeUnit(2, "lbs"))
	assert.Equal(t, "clove", PluralizeUnit(1, "clove"))
}
