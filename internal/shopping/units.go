package shopping

import (
	"math"

	"batched/internal/recipe"
)

// Family groups units that may be summed together.
type Family string

const (
	FamilyVolume Family = "volume"
	FamilyWeight Family = "weight"
	FamilyCount  Family = "count"
)

// Conversion factors to the family base unit: teaspoons for volume, ounces
// for weight. Count units have no base and pass through unchanged.
var volumeToTsp = map[recipe.Unit]float64{
	recipe.UnitTsp:  1,
	recipe.UnitTbsp: 3,
	recipe.UnitFlOz: 6,
	recipe.UnitCup:  48,
}

var weightToOz = map[recipe.Unit]float64{
	recipe.UnitOz:   1,
	recipe.UnitLb:   16,
	recipe.UnitGram: 0.035274,
	recipe.UnitKilo: 35.274,
}

// UnitFamily returns the measurement family a unit belongs to.
func UnitFamily(u recipe.Unit) Family {
	if _, ok := volumeToTsp[u]; ok {
		return FamilyVolume
	}
	if _, ok := weightToOz[u]; ok {
		return FamilyWeight
	}
	return FamilyCount
}

// ToBase converts a quantity to its family base unit. Count units are
// returned unchanged.
func ToBase(quantity float64, u recipe.Unit) float64 {
	if f, ok := volumeToTsp[u]; ok {
		return quantity * f
	}
	if f, ok := weightToOz[u]; ok {
		return quantity * f
	}
	return quantity
}

// BestVolumeUnit picks the largest volume unit where the amount is at least 1:
// cups from 48 tsp, tablespoons from 3 tsp, teaspoons below that. Nobody
// wants "0.02 cup" on a shopping list.
func BestVolumeUnit(tsp float64) (float64, recipe.Unit) {
	switch {
	case tsp >= 48:
		return round2(tsp / 48), recipe.UnitCup
	case tsp >= 3:
		return round2(tsp / 3), recipe.UnitTbsp
	default:
		return round2(tsp), recipe.UnitTsp
	}
}

// BestWeightUnit picks pounds from 16 oz, ounces below that.
func BestWeightUnit(oz float64) (float64, recipe.Unit) {
	if oz >= 16 {
		return round2(oz / 16), recipe.UnitLb
	}
	return round2(oz), recipe.UnitOz
}

// FromBase converts a base amount back to the best display unit for its
// family. For the count family the amount is only rounded; count units never
// convert.
func FromBase(baseAmount float64, family Family) (float64, recipe.Unit) {
	switch family {
	case FamilyVolume:
		return BestVolumeUnit(baseAmount)
	case FamilyWeight:
		return BestWeightUnit(baseAmount)
	default:
		return round2(baseAmount), ""
	}
}

// round2 rounds to 2 decimal places, halves away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// PluralizeUnit appends "s" unless the quantity is exactly 1 or the unit
// already ends in "s".
func PluralizeUnit(quantity float64, unit string) string {
	if quantity == 1 {
		return unit
	}
	if len(unit) > 0 && unit[len(unit)-1] == 's' {
		return unit
	}
	return unit + "s"
}
