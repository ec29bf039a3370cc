package recipe

import (
	"github.com/katalvlaran/prodrate/rational"
)

// Item is a typed quantity that recipes consume and produce.
type Item struct {
	Name    string
	Recipes []*Recipe // producers, in registration order
	Uses    []*Recipe // consumers, in registration order
}

// String returns the item name.
func (i *Item) String() string { return i.Name }

// Ingredient is an amount of an item per craft, used for both inputs and outputs.
type Ingredient struct {
	Item   *Item
	Amount rational.Rational
}

// Recipe converts ingredients into products.
type Recipe struct {
	Name        string
	Category    string            // selects the factory; empty for resource recipes
	Time        rational.Rational // seconds per craft
	Ingredients []Ingredient
	Products    []Ingredient

	// Resource marks a zero-ingredient recipe created by AddResourceRecipes
	// for an item nothing else produces.
	Resource bool
}

// String returns the recipe name.
func (r *Recipe) String() string { return r.Name }

// Gives returns how much of item one craft yields, including the
// productivity bonus spec reports for this recipe. Zero if the recipe
// does not produce item.
func (r *Recipe) Gives(item *Item, spec FactorySpec) rational.Rational {
	total := rational.Zero
	for _, p := range r.Products {
		if p.Item == item {
			total = total.Add(p.Amount)
		}
	}
	if total.IsZero() {
		return total
	}

	return total.Mul(prodEffect(spec, r))
}

// Produces reports whether item is among the products.
func (r *Recipe) Produces(item *Item) bool {
	for _, p := range r.Products {
		if p.Item == item {
			return true
		}
	}

	return false
}

// AllIngredients returns the ingredients followed by the fuel ingredient spec
// reports for this recipe, if any. The result is a fresh slice.
func (r *Recipe) AllIngredients(spec FactorySpec) []Ingredient {
	out := make([]Ingredient, 0, len(r.Ingredients)+1)
	out = append(out, r.Ingredients...)
	if spec != nil {
		out = append(out, spec.FuelIngredient(r)...)
	}

	return out
}

// FuelIngredient returns the fuel ingredient spec reports for the recipe; nil spec means none.
func (r *Recipe) FuelIngredient(spec FactorySpec) []Ingredient {
	if spec == nil {
		return nil
	}

	return spec.FuelIngredient(r)
}
