package solve

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/prodrate/dfs"
	"github.com/katalvlaran/prodrate/recipe"
)

// orderSolvers sorts solvers so that each one precedes every solver whose
// outputs it reaches through its external inputs. Expanding an input recipe
// may leave items unfinished for an upstream group, which must therefore be
// solved later.
func orderSolvers(ctx context.Context, solvers []*EquationSolver, spec recipe.FactorySpec) ([]*EquationSolver, error) {
	owner := make(map[*recipe.Item]int)
	for i, es := range solvers {
		for _, it := range es.outputs {
			owner[it] = i
		}
	}

	// Edge i -> j: group i draws, directly or through single-recipe chains,
	// on an output of group j.
	deps := make(dfs.Adjacency, len(solvers))
	for i, es := range solvers {
		seen := make(map[*recipe.Item]bool)
		found := make(map[int]bool)
		for _, it := range es.items[len(es.outputs):] {
			walkUpstream(it, owner, spec, seen, found)
		}
		for _, j := range sortedInts(found) {
			if j != i {
				deps[i] = append(deps[i], j)
			}
		}
	}

	order, err := dfs.TopologicalSort(deps, dfs.WithCancelContext(ctx))
	if errors.Is(err, dfs.ErrCycleDetected) {
		return nil, fmt.Errorf("orderSolvers: %w: %w", ErrCycle, err)
	}
	if err != nil {
		return nil, fmt.Errorf("orderSolvers: %w", err)
	}
	out := make([]*EquationSolver, len(order))
	for k, i := range order {
		out[k] = solvers[i]
	}

	return out, nil
}

// walkUpstream records in found the groups owning item or, for items outside
// every group, the groups reached through the item's producers.
func walkUpstream(item *recipe.Item, owner map[*recipe.Item]int, spec recipe.FactorySpec, seen map[*recipe.Item]bool, found map[int]bool) {
	if seen[item] {
		return
	}
	seen[item] = true
	if j, ok := owner[item]; ok {
		found[j] = true
		return
	}
	for _, r := range item.Recipes {
		for _, ing := range r.AllIngredients(spec) {
			walkUpstream(ing.Item, owner, spec, seen, found)
		}
	}
}

func sortedInts(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}
