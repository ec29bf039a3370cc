package subgraph

import (
	"context"
	"sort"

	"github.com/katalvlaran/prodrate/recipe"
)

// Subgraph is a set of recipes solved as a unit.
type Subgraph struct {
	ID          int              // arena index
	Recipes     []*recipe.Recipe // sorted by name
	Products    []*recipe.Item   // every product of Recipes, sorted by name
	Ingredients []*recipe.Item   // inputs not produced inside, fuel included, sorted by name
}

// Interesting reports whether the group needs the equation solver.
func (s *Subgraph) Interesting() bool {
	return len(s.Recipes) > 1 || len(s.Products) > 1
}

func newSubgraph(id int, recipes []*recipe.Recipe, spec recipe.FactorySpec) *Subgraph {
	s := &Subgraph{ID: id, Recipes: append([]*recipe.Recipe(nil), recipes...)}
	recipe.SortRecipes(s.Recipes)

	produced := make(map[*recipe.Item]bool)
	for _, r := range s.Recipes {
		for _, p := range r.Products {
			if !produced[p.Item] {
				produced[p.Item] = true
				s.Products = append(s.Products, p.Item)
			}
		}
	}
	seen := make(map[*recipe.Item]bool)
	for _, r := range s.Recipes {
		for _, ing := range r.AllIngredients(spec) {
			if produced[ing.Item] || seen[ing.Item] {
				continue
			}
			seen[ing.Item] = true
			s.Ingredients = append(s.Ingredients, ing.Item)
		}
	}
	sortItems(s.Products)
	sortItems(s.Ingredients)

	return s
}

func sortItems(items []*recipe.Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}

// groupMap is the arena of groups. Merged-away groups stay in groups but no
// recipe maps to them any more.
type groupMap struct {
	ctx       context.Context
	spec      recipe.FactorySpec
	groups    []*Subgraph
	byRecipe  map[string]int
	extraUses map[*recipe.Item][]*recipe.Recipe // fuel item -> burning recipes
}

func newGroupMap(spec recipe.FactorySpec, recipes []*recipe.Recipe) *groupMap {
	m := &groupMap{
		ctx:       context.Background(),
		spec:      spec,
		byRecipe:  make(map[string]int, len(recipes)),
		extraUses: make(map[*recipe.Item][]*recipe.Recipe),
	}
	for _, r := range recipes {
		s := newSubgraph(len(m.groups), []*recipe.Recipe{r}, spec)
		m.groups = append(m.groups, s)
		m.byRecipe[r.Name] = s.ID
		for _, fuel := range r.FuelIngredient(spec) {
			m.extraUses[fuel.Item] = append(m.extraUses[fuel.Item], r)
		}
	}

	return m
}

func (m *groupMap) get(r *recipe.Recipe) *Subgraph {
	return m.groups[m.byRecipe[r.Name]]
}

// merge joins the groups of the given recipes into one new group.
func (m *groupMap) merge(recipes []*recipe.Recipe) {
	ids := make(map[int]bool)
	for _, r := range recipes {
		ids[m.byRecipe[r.Name]] = true
	}
	m.mergeIDs(ids)
}

// mergeIDs joins whole groups by id. A single id is a no-op.
func (m *groupMap) mergeIDs(ids map[int]bool) {
	if len(ids) < 2 {
		return
	}
	var all []*recipe.Recipe
	for _, id := range sortedIDs(ids) {
		all = append(all, m.groups[id].Recipes...)
	}
	s := newSubgraph(len(m.groups), all, m.spec)
	m.groups = append(m.groups, s)
	for _, r := range all {
		m.byRecipe[r.Name] = s.ID
	}
}

// live returns the current groups in ascending id order.
func (m *groupMap) live() []*Subgraph {
	ids := make(map[int]bool, len(m.byRecipe))
	for _, id := range m.byRecipe {
		ids[id] = true
	}
	out := make([]*Subgraph, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		out = append(out, m.groups[id])
	}

	return out
}

// consumers returns the recipes using item, fuel burners included.
func (m *groupMap) consumers(item *recipe.Item) []*recipe.Recipe {
	uses := append([]*recipe.Recipe(nil), item.Uses...)

	return append(uses, m.extraUses[item]...)
}

// neighbors returns the groups producing s's ingredients or, inverted, the
// groups consuming s's products. Each group appears once, in first-seen order.
func (m *groupMap) neighbors(s *Subgraph, invert bool) []*Subgraph {
	items := s.Ingredients
	if invert {
		items = s.Products
	}
	seen := make(map[int]bool)
	var out []*Subgraph
	for _, it := range items {
		rs := it.Recipes
		if invert {
			rs = m.consumers(it)
		}
		for _, r := range rs {
			g := m.get(r)
			if !seen[g.ID] {
				seen[g.ID] = true
				out = append(out, g)
			}
		}
	}

	return out
}

// interesting returns the recipe lists of the interesting live groups.
func (m *groupMap) interesting() [][]*recipe.Recipe {
	var out [][]*recipe.Recipe
	for _, s := range m.live() {
		if s.Interesting() {
			out = append(out, append([]*recipe.Recipe(nil), s.Recipes...))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].Name < out[j][0].Name })

	return out
}

func sortedIDs(ids map[int]bool) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
