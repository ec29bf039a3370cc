package recipe

import "github.com/katalvlaran/prodrate/rational"

// FactorySpec supplies per-recipe modifiers. It is consulted during
// decomposition (fuel ingredients create extra item uses) and during
// resolution (productivity scales yields).
type FactorySpec interface {
	// ProdEffect returns the productivity multiplier (>= 1) for the recipe;
	// 1 means no bonus.
	ProdEffect(r *Recipe) rational.Rational

	// Legacy selects the legacy productivity model, in which a recipe row is
	// rebuilt from its definition with the bonus applied to products only.
	Legacy() bool

	// FuelIngredient returns zero or one ingredient: the fuel a burner
	// factory consumes per craft of the recipe.
	FuelIngredient(r *Recipe) []Ingredient
}

// Identity is the FactorySpec without modifiers: productivity 1, no fuel,
// current (non-legacy) model.
type Identity struct{}

var _ FactorySpec = Identity{}

// ProdEffect returns 1.
func (Identity) ProdEffect(*Recipe) rational.Rational { return rational.One }

// Legacy returns false.
func (Identity) Legacy() bool { return false }

// FuelIngredient returns nil.
func (Identity) FuelIngredient(*Recipe) []Ingredient { return nil }

// prodEffect treats a nil spec as Identity.
func prodEffect(spec FactorySpec, r *Recipe) rational.Rational {
	if spec == nil {
		return rational.One
	}

	return spec.ProdEffect(r)
}
