package recipe

// Unit is one of the fixed measurement unit symbols a RecipeIngredient may use.
type Unit string

const (
	UnitPiece Unit = "piece"
	UnitClove Unit = "clove"
	UnitBunch Unit = "bunch"
	UnitHead  Unit = "head"
	UnitCup   Unit = "cup"
	UnitTbsp  Unit = "tbsp"
	UnitTsp   Unit = "tsp"
	UnitFlOz  Unit = "fl oz"
	UnitOz    Unit = "oz"
	UnitLb    Unit = "lb"
	UnitGram  Unit = "g"
	UnitKilo  Unit = "kg"
)

// Units lists every valid unit symbol in presentation order.
var Units = []Unit{
	UnitPiece, UnitClove, UnitBunch, UnitHead,
	UnitCup, UnitTbsp, UnitTsp, UnitFlOz,
	UnitOz, UnitLb, UnitGram, UnitKilo,
}

var validUnits = func() map[Unit]bool {
	m := make(map[Unit]bool, len(Units))
	for _, u := range Units {
		m[u] = true
	}
	return m
}()

// ValidUnit reports whether u is one of the fixed unit symbols.
func ValidUnit(u Unit) bool {
	return validUnits[u]
}

// Ingredient is the identity entity for an ingredient. There is exactly one
// Ingredient per distinct canonical name.
type Ingredient struct {
	ID            string `json:"id" db:"id"`
	CanonicalName string `json:"canonicalName" db:"canonical_name"`
	DisplayName   string `json:"displayName" db:"display_name"`
	Slug          string `json:"slug,omitempty" db:"slug"`
	Image         string `json:"image,omitempty"`
}

// RecipeIngredient is a quantity of an Ingredient used in a Recipe. Note holds
// free text distinguishing variants ("Red" vs "White" onion) and keeps them on
// separate shopping-list lines.
type RecipeIngredient struct {
	ID         string     `json:"id" db:"id"`
	Ingredient Ingredient `json:"ingredient"`
	Quantity   float64    `json:"quantity" db:"quantity"`
	Unit       Unit       `json:"unit" db:"unit"`
	Note       string     `json:"note,omitempty" db:"note"`
}

// RecipeStep is one instruction step. StepNumber is a dense 1-based sequence
// reflecting presentation order.
type RecipeStep struct {
	ID         string `json:"id" db:"id"`
	StepNumber int    `json:"stepNumber" db:"step_number"`
	Content    string `json:"content" db:"content"`
}

// Recipe is a named set of steps and ingredient quantities. Instructions is
// the legacy free-text field kept for recipes created before steps existed.
type Recipe struct {
	ID           string             `json:"id" db:"id"`
	Name         string             `json:"name" db:"name"`
	Instructions string             `json:"instructions,omitempty" db:"instructions"`
	Steps        []RecipeStep       `json:"steps"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	CreatedAt    int64              `json:"createdAt" db:"created_at"`
	UpdatedAt    int64              `json:"updatedAt" db:"updated_at"`
}
