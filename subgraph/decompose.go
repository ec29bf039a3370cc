package subgraph

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/prodrate/dfs"
	"github.com/katalvlaran/prodrate/recipe"
)

// Decomposition is the outcome of Decompose.
type Decomposition struct {
	// Groups are the interesting groups after all three passes: the units the
	// equation solver works on.
	Groups [][]*recipe.Recipe

	// Simple are the interesting groups after co-production merging only,
	// used for display.
	Simple [][]*recipe.Recipe
}

// Decompose partitions the recipes of g into solve groups. spec supplies the
// fuel ingredients, which count as inputs of the recipes that burn them.
// Decompose does not modify g.
func Decompose(spec recipe.FactorySpec, g *recipe.Graph) (*Decomposition, error) {
	return DecomposeContext(context.Background(), spec, g)
}

// DecomposeContext is Decompose with graph traversals that stop with
// ctx.Err() once ctx is done.
func DecomposeContext(ctx context.Context, spec recipe.FactorySpec, g *recipe.Graph) (*Decomposition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("subgraph: Decompose: %w", err)
	}
	m := newGroupMap(spec, g.Recipes())
	m.ctx = ctx
	items := g.Items()

	// 1. Co-production.
	for _, it := range items {
		if len(it.Recipes) > 1 {
			m.merge(it.Recipes)
		}
	}
	simple := m.interesting()

	// 2. Cycles.
	if err := m.mergeCycles(); err != nil {
		return nil, fmt.Errorf("subgraph: Decompose: %w", err)
	}

	// 3. Diamonds.
	if err := m.mergeDiamonds(items); err != nil {
		return nil, fmt.Errorf("subgraph: Decompose: %w", err)
	}

	return &Decomposition{Groups: m.interesting(), Simple: simple}, nil
}

// mergeCycles merges every strongly connected component of the group graph.
func (m *groupMap) mergeCycles() error {
	live := m.live()
	index := make(map[int]int, len(live))
	for i, s := range live {
		index[s.ID] = i
	}
	forward := make(dfs.Adjacency, len(live))
	inverted := make(dfs.Adjacency, len(live))
	for i, s := range live {
		for _, nb := range m.neighbors(s, false) {
			forward[i] = append(forward[i], index[nb.ID])
		}
		for _, nb := range m.neighbors(s, true) {
			inverted[i] = append(inverted[i], index[nb.ID])
		}
	}

	components, err := dfs.StronglyConnected(forward, inverted, dfs.WithContext(m.ctx))
	if err != nil {
		return err
	}
	for _, comp := range components {
		ids := make(map[int]bool, len(comp))
		for _, v := range comp {
			ids[live[v].ID] = true
		}
		m.mergeIDs(ids)
	}

	return nil
}

// itemClosure holds, per item, the items it transitively depends on and the
// items that transitively depend on it. Both include the item itself.
type itemClosure struct {
	deps  map[*recipe.Item]map[*recipe.Item]bool
	prods map[*recipe.Item]map[*recipe.Item]bool
}

func (m *groupMap) closure(items []*recipe.Item) (*itemClosure, error) {
	index := make(map[*recipe.Item]int, len(items))
	for i, it := range items {
		index[it] = i
	}
	up := make(dfs.Adjacency, len(items))
	down := make(dfs.Adjacency, len(items))
	for i, it := range items {
		for _, s := range m.groupsOf(it.Recipes) {
			for _, ing := range s.Ingredients {
				if j, ok := index[ing]; ok {
					up[i] = append(up[i], j)
				}
			}
		}
		for _, s := range m.groupsOf(m.consumers(it)) {
			for _, p := range s.Products {
				if j, ok := index[p]; ok {
					down[i] = append(down[i], j)
				}
			}
		}
	}

	c := &itemClosure{
		deps:  make(map[*recipe.Item]map[*recipe.Item]bool, len(items)),
		prods: make(map[*recipe.Item]map[*recipe.Item]bool, len(items)),
	}
	for i, it := range items {
		reach, err := dfs.Reachable(up, i, dfs.WithContext(m.ctx))
		if err != nil {
			return nil, err
		}
		c.deps[it] = toItemSet(items, reach)
		if reach, err = dfs.Reachable(down, i, dfs.WithContext(m.ctx)); err != nil {
			return nil, err
		}
		c.prods[it] = toItemSet(items, reach)
	}

	return c, nil
}

// groupsOf returns the distinct groups of rs in first-seen order.
func (m *groupMap) groupsOf(rs []*recipe.Recipe) []*Subgraph {
	seen := make(map[int]bool)
	var out []*Subgraph
	for _, r := range rs {
		s := m.get(r)
		if !seen[s.ID] {
			seen[s.ID] = true
			out = append(out, s)
		}
	}

	return out
}

func toItemSet(items []*recipe.Item, idx []int) map[*recipe.Item]bool {
	set := make(map[*recipe.Item]bool, len(idx))
	for _, i := range idx {
		set[items[i]] = true
	}

	return set
}

func sortedItems(set map[*recipe.Item]bool) []*recipe.Item {
	out := make([]*recipe.Item, 0, len(set))
	for it := range set {
		out = append(out, it)
	}
	sortItems(out)

	return out
}

type link struct{ ingredient, dep *recipe.Item }

// crossed reports whether two links differ in both the ingredient and the
// upstream item.
func crossed(links []link) bool {
	for i := 0; i < len(links)-1; i++ {
		for j := i + 1; j < len(links); j++ {
			if links[i].ingredient != links[j].ingredient && links[i].dep != links[j].dep {
				return true
			}
		}
	}

	return false
}

// mergeDiamonds merges interesting groups that feed a later interesting group
// along two independent paths, with every group between them.
func (m *groupMap) mergeDiamonds(items []*recipe.Item) error {
	c, err := m.closure(items)
	if err != nil {
		return err
	}
	live := m.live()
	producer := make(map[*recipe.Item]*Subgraph)
	for _, s := range live {
		for _, p := range s.Products {
			producer[p] = s
		}
	}

	var mergings []map[int]bool
	for _, s := range live {
		if !s.Interesting() {
			continue
		}
		matches := make(map[int][]link)
		allDeps := make(map[*recipe.Item]bool)
		for _, ing := range s.Ingredients {
			for _, dep := range sortedItems(c.deps[ing]) {
				allDeps[dep] = true
				upstream, ok := producer[dep]
				if !ok || upstream == s || !upstream.Interesting() {
					continue
				}
				matches[upstream.ID] = append(matches[upstream.ID], link{ing, dep})
			}
		}

		set := map[int]bool{s.ID: true}
		for _, id := range sortedIDs(keys(matches)) {
			if !crossed(matches[id]) {
				continue
			}
			upstream := m.groups[id]
			set[id] = true
			own := make(map[*recipe.Item]bool, len(upstream.Products))
			for _, p := range upstream.Products {
				own[p] = true
			}
			for _, p := range upstream.Products {
				for _, down := range sortedItems(c.prods[p]) {
					if own[down] || !allDeps[down] {
						continue
					}
					if pg, ok := producer[down]; ok {
						set[pg.ID] = true
					}
				}
			}
		}
		if len(set) > 1 {
			mergings = append(mergings, set)
		}
	}

	for _, set := range unionOverlapping(mergings) {
		m.mergeIDs(set)
	}

	return nil
}

func keys(m map[int][]link) map[int]bool {
	out := make(map[int]bool, len(m))
	for k := range m {
		out[k] = true
	}

	return out
}

// unionOverlapping unions sets sharing an id until all are disjoint. The
// result is ordered by smallest id.
func unionOverlapping(sets []map[int]bool) []map[int]bool {
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(sets) && !merged; i++ {
			for j := i + 1; j < len(sets); j++ {
				if !overlaps(sets[i], sets[j]) {
					continue
				}
				for id := range sets[j] {
					sets[i][id] = true
				}
				sets = append(sets[:j], sets[j+1:]...)
				merged = true

				break
			}
		}
	}
	sort.Slice(sets, func(i, j int) bool { return sortedIDs(sets[i])[0] < sortedIDs(sets[j])[0] })

	return sets
}

func overlaps(a, b map[int]bool) bool {
	for id := range a {
		if b[id] {
			return true
		}
	}

	return false
}
