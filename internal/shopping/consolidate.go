package shopping

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"batched/internal/recipe"
)

// ConsolidatedIngredient is one line of the merged shopping list. Derived,
// never persisted. AlreadyHave is a downstream user toggle and always starts
// false.
type ConsolidatedIngredient struct {
	Ingredient    recipe.Ingredient `json:"ingredient"`
	TotalQuantity float64           `json:"totalQuantity"`
	Unit          recipe.Unit       `json:"unit"`
	FromRecipes   []string          `json:"fromRecipes"`
	AlreadyHave   bool              `json:"alreadyHave"`
	Note          string            `json:"note,omitempty"`
}

// RecipeGetter is the storage collaborator the consolidator needs. A nil
// recipe with a nil error means the id does not resolve.
type RecipeGetter interface {
	GetRecipe(ctx context.Context, id string) (*recipe.Recipe, error)
}

// Consolidator merges the ingredients of a set of recipes into a
// unit-normalized shopping list.
type Consolidator struct {
	store    RecipeGetter
	collator *collate.Collator
}

// NewConsolidator wires the consolidator to its recipe source.
func NewConsolidator(store RecipeGetter) *Consolidator {
	return &Consolidator{
		store:    store,
		collator: collate.New(language.English, collate.Loose),
	}
}

// occurrence is one use of an ingredient in one recipe.
type occurrence struct {
	quantity   float64
	unit       recipe.Unit
	recipeName string
}

// group accumulates all occurrences sharing a canonical name and note.
type group struct {
	ingredient  recipe.Ingredient
	note        string
	occurrences []occurrence
}

// Consolidate resolves each recipe id, groups every recipe ingredient by
// canonical name plus note, sums quantities within compatible unit families,
// and returns one line per group and family, sorted alphabetically by display
// name. Ids that do not resolve contribute nothing; only storage I/O failures
// return an error.
func (c *Consolidator) Consolidate(ctx context.Context, recipeIDs []string) ([]ConsolidatedIngredient, error) {
	var recipes []*recipe.Recipe
	for _, id := range recipeIDs {
		r, err := c.store.GetRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		if r != nil {
			recipes = append(recipes, r)
		}
	}

	// Stage 1: fold occurrences into groups keyed by canonical name + note,
	// keeping key order explicit so output is deterministic before the sort.
	groups := make(map[string]*group)
	var keys []string
	for _, r := range recipes {
		for _, ri := range r.Ingredients {
			key := ri.Ingredient.CanonicalName + ":" + ri.Note
			g, ok := groups[key]
			if !ok {
				g = &group{ingredient: ri.Ingredient, note: ri.Note}
				groups[key] = g
				keys = append(keys, key)
			}
			g.occurrences = append(g.occurrences, occurrence{
				quantity:   ri.Quantity,
				unit:       ri.Unit,
				recipeName: r.Name,
			})
		}
	}

	// Stage 2: transform each group into output lines, one per unit family
	// (and one per exact symbol within the count family).
	var consolidated []ConsolidatedIngredient
	for _, key := range keys {
		g := groups[key]

		byFamily := map[Family][]occurrence{}
		for _, occ := range g.occurrences {
			family := UnitFamily(occ.unit)
			byFamily[family] = append(byFamily[family], occ)
		}

		for _, family := range []Family{FamilyVolume, FamilyWeight} {
			occs := byFamily[family]
			if len(occs) == 0 {
				continue
			}
			var totalBase float64
			var fromRecipes []string
			for _, occ := range occs {
				totalBase += ToBase(occ.quantity, occ.unit)
				fromRecipes = append(fromRecipes, occ.recipeName)
			}
			amount, unit := FromBase(totalBase, family)
			consolidated = append(consolidated, ConsolidatedIngredient{
				Ingredient:    g.ingredient,
				TotalQuantity: amount,
				Unit:          unit,
				FromRecipes:   dedupe(fromRecipes),
				Note:          g.note,
			})
		}

		// Count units are never summed across symbols: 2 cloves and 1 head of
		// garlic stay separate lines.
		countOccs := byFamily[FamilyCount]
		byUnit := map[recipe.Unit]*struct {
			quantity float64
			recipes  []string
		}{}
		var unitOrder []recipe.Unit
		for _, occ := range countOccs {
			entry, ok := byUnit[occ.unit]
			if !ok {
				entry = &struct {
					quantity float64
					recipes  []string
				}{}
				byUnit[occ.unit] = entry
				unitOrder = append(unitOrder, occ.unit)
			}
			entry.quantity += occ.quantity
			entry.recipes = append(entry.recipes, occ.recipeName)
		}
		for _, unit := range unitOrder {
			entry := byUnit[unit]
			amount, _ := FromBase(entry.quantity, FamilyCount)
			consolidated = append(consolidated, ConsolidatedIngredient{
				Ingredient:    g.ingredient,
				TotalQuantity: amount,
				Unit:          unit,
				FromRecipes:   dedupe(entry.recipes),
				Note:          g.note,
			})
		}
	}

	sort.SliceStable(consolidated, func(a, b int) bool {
		return c.collator.CompareString(
			consolidated[a].Ingredient.DisplayName,
			consolidated[b].Ingredient.DisplayName,
		) < 0
	})

	return consolidated, nil
}

// dedupe keeps the first occurrence of each name, preserving order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
