package solve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
	"github.com/katalvlaran/prodrate/solve"
)

func n(v int64) rational.Rational { return rational.FromInt(v) }

// rcp describes a recipe for newGraph.
type rcp struct {
	name, category string
	in, out        []recipe.Quantity
}

func q(item string, amount int64) recipe.Quantity { return recipe.Q(item, n(amount)) }

func newGraph(t *testing.T, rs ...rcp) *recipe.Graph {
	t.Helper()
	g := recipe.NewGraph()
	for _, r := range rs {
		_, err := g.AddRecipe(r.name, r.category, rational.One, r.in, r.out)
		require.NoError(t, err)
	}

	return g
}

func prepared(t *testing.T, g *recipe.Graph, spec recipe.FactorySpec, opts ...solve.Option) *solve.Solver {
	t.Helper()
	s := solve.NewSolver(g, opts...)
	require.NoError(t, s.FindSubgraphs(spec))

	return s
}

func rates(t *testing.T, totals *solve.Totals) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, name := range totals.Recipes() {
		r, ok := totals.Get(name)
		require.True(t, ok)
		out[name] = r.String()
	}

	return out
}

// chain: X <- 2Y, Y <- Z, Z from nothing.
func chain(t *testing.T) *recipe.Graph {
	return newGraph(t,
		rcp{name: "x", in: []recipe.Quantity{q("Y", 2)}, out: []recipe.Quantity{q("X", 1)}},
		rcp{name: "y", in: []recipe.Quantity{q("Z", 1)}, out: []recipe.Quantity{q("Y", 1)}},
		rcp{name: "z", out: []recipe.Quantity{q("Z", 1)}},
	)
}

// coProduction: two recipes for W, the coarse one needing twice the V.
func coProduction(t *testing.T) *recipe.Graph {
	return newGraph(t,
		rcp{name: "w-fine", in: []recipe.Quantity{q("V", 1)}, out: []recipe.Quantity{q("W", 1)}},
		rcp{name: "w-coarse", in: []recipe.Quantity{q("V", 2)}, out: []recipe.Quantity{q("W", 1)}},
		rcp{name: "v-mine", out: []recipe.Quantity{q("V", 1)}},
	)
}

// reactorCycle: a reactor burns fuel cells and returns spent cells that are
// reassembled with ore.
func reactorCycle(t *testing.T) *recipe.Graph {
	return newGraph(t,
		rcp{name: "reactor", in: []recipe.Quantity{q("fuel-cell", 1)}, out: []recipe.Quantity{q("heat", 1), q("spent-cell", 1)}},
		rcp{name: "cell-assembly", in: []recipe.Quantity{q("spent-cell", 1), q("ore", 1)}, out: []recipe.Quantity{q("fuel-cell", 1)}},
		rcp{name: "ore-mine", out: []recipe.Quantity{q("ore", 1)}},
	)
}

// refinery: one recipe with two products; only one of them is wanted.
func refinery(t *testing.T) *recipe.Graph {
	return newGraph(t,
		rcp{name: "oil-processing", category: "refining", in: []recipe.Quantity{q("crude", 1)}, out: []recipe.Quantity{q("heavy", 1), q("light", 1)}},
		rcp{name: "crude-mine", out: []recipe.Quantity{q("crude", 1)}},
	)
}

// prodSpec gives "refining" recipes +50% productivity.
type prodSpec struct{ legacy bool }

func (prodSpec) ProdEffect(r *recipe.Recipe) rational.Rational {
	if r.Category == "refining" {
		return rational.MustNew(3, 2)
	}
	return rational.One
}

func (s prodSpec) Legacy() bool                                    { return s.legacy }
func (prodSpec) FuelIngredient(*recipe.Recipe) []recipe.Ingredient { return nil }

// countingRecorder counts Recorder calls.
type countingRecorder struct {
	decomposed, solved, failed, resolved, pivots int
}

func (c *countingRecorder) GroupSolved(p int) {
	c.solved++
	c.pivots += p
}

func (c *countingRecorder) Decomposed(int)                { c.decomposed++ }
func (c *countingRecorder) GroupFailed()                  { c.failed++ }
func (c *countingRecorder) Resolved(time.Duration, error) { c.resolved++ }
