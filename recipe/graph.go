package recipe

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/prodrate/rational"
)

// Quantity names an item and an amount; it is the input form of an
// ingredient or product for AddRecipe.
type Quantity struct {
	Item   string
	Amount rational.Rational
}

// Q is shorthand for Quantity{item, amount}.
func Q(item string, amount rational.Rational) Quantity {
	return Quantity{Item: item, Amount: amount}
}

// Graph owns the items and recipes of one data set.
// It is not safe for concurrent mutation.
type Graph struct {
	items   map[string]*Item
	recipes map[string]*Recipe
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		items:   make(map[string]*Item),
		recipes: make(map[string]*Recipe),
	}
}

// AddItem returns the item called name, creating it if needed.
func (g *Graph) AddItem(name string) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if it, ok := g.items[name]; ok {
		return it, nil
	}
	it := &Item{Name: name}
	g.items[name] = it

	return it, nil
}

// AddRecipe registers a recipe and wires the item back references.
// Items are created on first mention.
//
// Errors:
//   - ErrEmptyName for an empty recipe or item name.
//   - ErrDuplicateRecipe if name is taken.
//   - ErrNoProducts if products is empty.
//   - ErrInvalidAmount for a non-positive amount or a negative time.
func (g *Graph) AddRecipe(name, category string, time rational.Rational, ingredients, products []Quantity) (*Recipe, error) {
	// 1. Validate before touching the graph, so a failed call leaves no trace.
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, dup := g.recipes[name]; dup {
		return nil, fmt.Errorf("AddRecipe(%q): %w", name, ErrDuplicateRecipe)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("AddRecipe(%q): %w", name, ErrNoProducts)
	}
	if time.Sign() < 0 {
		return nil, fmt.Errorf("AddRecipe(%q): time %s: %w", name, time, ErrInvalidAmount)
	}
	for _, q := range append(append([]Quantity(nil), ingredients...), products...) {
		if q.Item == "" {
			return nil, fmt.Errorf("AddRecipe(%q): %w", name, ErrEmptyName)
		}
		if q.Amount.Sign() <= 0 {
			return nil, fmt.Errorf("AddRecipe(%q): %s amount %s: %w", name, q.Item, q.Amount, ErrInvalidAmount)
		}
	}

	// 2. Build and link.
	r := &Recipe{Name: name, Category: category, Time: time}
	for _, q := range ingredients {
		it, _ := g.AddItem(q.Item) // name checked above
		r.Ingredients = append(r.Ingredients, Ingredient{Item: it, Amount: q.Amount})
		it.Uses = append(it.Uses, r)
	}
	for _, q := range products {
		it, _ := g.AddItem(q.Item)
		r.Products = append(r.Products, Ingredient{Item: it, Amount: q.Amount})
		it.Recipes = append(it.Recipes, r)
	}
	g.recipes[name] = r

	return r, nil
}

// AddResourceRecipes gives every item without a producer a resource recipe
// of the same name: no category, zero time, no ingredients, one unit of the
// item per craft. It returns the recipes it created, sorted by name.
func (g *Graph) AddResourceRecipes() ([]*Recipe, error) {
	var added []*Recipe
	for _, it := range g.Items() {
		if len(it.Recipes) > 0 {
			continue
		}
		r, err := g.AddRecipe(it.Name, "", rational.Zero, nil, []Quantity{Q(it.Name, rational.One)})
		if err != nil {
			return added, fmt.Errorf("AddResourceRecipes: %w", err)
		}
		r.Resource = true
		added = append(added, r)
	}

	return added, nil
}

// Item returns the item called name.
func (g *Graph) Item(name string) (*Item, error) {
	it, ok := g.items[name]
	if !ok {
		return nil, fmt.Errorf("Item(%q): %w", name, ErrUnknownItem)
	}

	return it, nil
}

// Recipe returns the recipe called name.
func (g *Graph) Recipe(name string) (*Recipe, error) {
	r, ok := g.recipes[name]
	if !ok {
		return nil, fmt.Errorf("Recipe(%q): %w", name, ErrUnknownRecipe)
	}

	return r, nil
}

// Items returns every item sorted by name.
func (g *Graph) Items() []*Item {
	out := make([]*Item, 0, len(g.items))
	for _, it := range g.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Recipes returns every recipe sorted by name.
func (g *Graph) Recipes() []*Recipe {
	out := make([]*Recipe, 0, len(g.recipes))
	for _, r := range g.recipes {
		out = append(out, r)
	}
	SortRecipes(out)

	return out
}

// Len returns the number of items and recipes.
func (g *Graph) Len() (items, recipes int) {
	return len(g.items), len(g.recipes)
}

// SortRecipes sorts rs in place by name.
func SortRecipes(rs []*Recipe) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })
}
