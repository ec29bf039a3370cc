package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
)

var one = rational.One

func n(v int64) rational.Rational { return rational.FromInt(v) }

// bonusSpec gives every recipe with a category +50% productivity and makes
// "smelting" recipes burn 1/2 coal per craft.
type bonusSpec struct{ coal *recipe.Item }

func (bonusSpec) ProdEffect(r *recipe.Recipe) rational.Rational {
	if r.Category == "" {
		return one
	}
	return rational.MustNew(3, 2)
}

func (bonusSpec) Legacy() bool { return false }

func (s bonusSpec) FuelIngredient(r *recipe.Recipe) []recipe.Ingredient {
	if r.Category != "smelting" {
		return nil
	}
	return []recipe.Ingredient{{Item: s.coal, Amount: rational.Half}}
}

func TestAddRecipeLinksItems(t *testing.T) {
	g := recipe.NewGraph()

	gear, err := g.AddRecipe("gear", "crafting", n(1),
		[]recipe.Quantity{recipe.Q("iron-plate", n(2))},
		[]recipe.Quantity{recipe.Q("gear", one)})
	require.NoError(t, err)

	plate, err := g.AddRecipe("iron-plate", "smelting", rational.MustNew(16, 5),
		[]recipe.Quantity{recipe.Q("iron-ore", one)},
		[]recipe.Quantity{recipe.Q("iron-plate", one)})
	require.NoError(t, err)

	ironPlate, err := g.Item("iron-plate")
	require.NoError(t, err)
	assert.Equal(t, []*recipe.Recipe{plate}, ironPlate.Recipes) // producer
	assert.Equal(t, []*recipe.Recipe{gear}, ironPlate.Uses)     // consumer

	items, recipes := g.Len()
	assert.Equal(t, 3, items)
	assert.Equal(t, 2, recipes)

	names := []string{}
	for _, it := range g.Items() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"gear", "iron-ore", "iron-plate"}, names)
	assert.Equal(t, []*recipe.Recipe{gear, plate}, g.Recipes())
}

func TestAddRecipeValidation(t *testing.T) {
	g := recipe.NewGraph()
	out := []recipe.Quantity{recipe.Q("x", one)}

	_, err := g.AddRecipe("", "", one, nil, out)
	require.ErrorIs(t, err, recipe.ErrEmptyName)

	_, err = g.AddRecipe("x", "", one, nil, nil)
	require.ErrorIs(t, err, recipe.ErrNoProducts)

	_, err = g.AddRecipe("x", "", one, nil, []recipe.Quantity{recipe.Q("x", rational.Zero)})
	require.ErrorIs(t, err, recipe.ErrInvalidAmount)

	_, err = g.AddRecipe("x", "", n(-1), nil, out)
	require.ErrorIs(t, err, recipe.ErrInvalidAmount)

	_, err = g.AddRecipe("x", "", one, []recipe.Quantity{recipe.Q("", one)}, out)
	require.ErrorIs(t, err, recipe.ErrEmptyName)

	// None of the failed calls left an item behind.
	items, recipes := g.Len()
	assert.Zero(t, items)
	assert.Zero(t, recipes)

	_, err = g.AddRecipe("x", "", one, nil, out)
	require.NoError(t, err)
	_, err = g.AddRecipe("x", "", one, nil, out)
	require.ErrorIs(t, err, recipe.ErrDuplicateRecipe)
}

func TestLookups(t *testing.T) {
	g := recipe.NewGraph()
	_, err := g.Item("nope")
	require.ErrorIs(t, err, recipe.ErrUnknownItem)
	_, err = g.Recipe("nope")
	require.ErrorIs(t, err, recipe.ErrUnknownRecipe)
	_, err = g.AddItem("")
	require.ErrorIs(t, err, recipe.ErrEmptyName)
}

func TestAddResourceRecipes(t *testing.T) {
	g := recipe.NewGraph()
	_, err := g.AddRecipe("plate", "smelting", n(3),
		[]recipe.Quantity{recipe.Q("ore", one)},
		[]recipe.Quantity{recipe.Q("plate", one)})
	require.NoError(t, err)

	added, err := g.AddResourceRecipes()
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "ore", added[0].Name)
	assert.True(t, added[0].Resource)
	assert.Empty(t, added[0].Ingredients)
	assert.Empty(t, added[0].Category)

	ore, _ := g.Item("ore")
	assert.Equal(t, added, ore.Recipes)

	again, err := g.AddResourceRecipes() // idempotent
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestGivesAndIngredients(t *testing.T) {
	g := recipe.NewGraph()
	r, err := g.AddRecipe("cracking", "smelting", n(2),
		[]recipe.Quantity{recipe.Q("heavy", n(4))},
		[]recipe.Quantity{recipe.Q("light", n(3)), recipe.Q("gas", one)})
	require.NoError(t, err)
	coal, _ := g.AddItem("coal")
	light, _ := g.Item("light")
	heavy, _ := g.Item("heavy")

	spec := bonusSpec{coal: coal}
	assert.Equal(t, "9/2", r.Gives(light, spec).String()) // 3 * 3/2
	assert.True(t, r.Gives(heavy, spec).IsZero())
	assert.Equal(t, "3", r.Gives(light, recipe.Identity{}).String())
	assert.Equal(t, "3", r.Gives(light, nil).String())
	assert.True(t, r.Produces(light))
	assert.False(t, r.Produces(heavy))

	all := r.AllIngredients(spec)
	require.Len(t, all, 2)
	assert.Equal(t, heavy, all[0].Item)
	assert.Equal(t, coal, all[1].Item)
	assert.Equal(t, "1/2", all[1].Amount.String())
	assert.Len(t, r.Ingredients, 1) // definition untouched

	assert.Len(t, r.AllIngredients(recipe.Identity{}), 1)
	assert.Nil(t, r.FuelIngredient(nil))
}
