package subgraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
	"github.com/katalvlaran/prodrate/subgraph"
)

var one = rational.One

type def struct {
	name, category string
	in, out        []string
}

func build(t *testing.T, defs ...def) *recipe.Graph {
	t.Helper()
	g := recipe.NewGraph()
	qs := func(names []string) []recipe.Quantity {
		out := make([]recipe.Quantity, 0, len(names))
		for _, n := range names {
			out = append(out, recipe.Q(n, one))
		}
		return out
	}
	for _, d := range defs {
		_, err := g.AddRecipe(d.name, d.category, one, qs(d.in), qs(d.out))
		require.NoError(t, err)
	}
	_, err := g.AddResourceRecipes()
	require.NoError(t, err)

	return g
}

func names(groups [][]*recipe.Recipe) [][]string {
	out := make([][]string, 0, len(groups))
	for _, grp := range groups {
		ns := make([]string, 0, len(grp))
		for _, r := range grp {
			ns = append(ns, r.Name)
		}
		out = append(out, ns)
	}

	return out
}

// boilerSpec makes "boiler" recipes burn one coal per craft.
type boilerSpec struct{ coal *recipe.Item }

func (boilerSpec) ProdEffect(*recipe.Recipe) rational.Rational { return one }
func (boilerSpec) Legacy() bool                                { return false }
func (s boilerSpec) FuelIngredient(r *recipe.Recipe) []recipe.Ingredient {
	if r.Category != "boiler" {
		return nil
	}
	return []recipe.Ingredient{{Item: s.coal, Amount: one}}
}

func TestDecompose_NilGraph(t *testing.T) {
	_, err := subgraph.Decompose(recipe.Identity{}, nil)
	require.ErrorIs(t, err, subgraph.ErrNilGraph)
}

func TestDecomposeContext_Cancelled(t *testing.T) {
	g := build(t,
		def{name: "x", in: []string{"Y"}, out: []string{"X"}},
		def{name: "y", in: []string{"Z"}, out: []string{"Y"}},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := subgraph.DecomposeContext(ctx, recipe.Identity{}, g)
	require.ErrorIs(t, err, context.Canceled)

	d, err := subgraph.DecomposeContext(context.Background(), recipe.Identity{}, g)
	require.NoError(t, err)
	assert.Empty(t, d.Groups)
}

func TestDecompose_Chain(t *testing.T) {
	g := build(t,
		def{name: "x", in: []string{"Y"}, out: []string{"X"}},
		def{name: "y", in: []string{"Z"}, out: []string{"Y"}},
	)
	d, err := subgraph.Decompose(recipe.Identity{}, g)
	require.NoError(t, err)
	assert.Empty(t, d.Groups)
	assert.Empty(t, d.Simple)
}

func TestDecompose_CoProduction(t *testing.T) {
	g := build(t,
		def{name: "w-fine", in: []string{"V"}, out: []string{"W"}},
		def{name: "w-coarse", in: []string{"V"}, out: []string{"W"}},
	)
	d, err := subgraph.Decompose(recipe.Identity{}, g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"w-coarse", "w-fine"}}, names(d.Groups))
	assert.Equal(t, [][]string{{"w-coarse", "w-fine"}}, names(d.Simple))
}

func TestDecompose_TwoCycle(t *testing.T) {
	g := build(t,
		def{name: "reactor", in: []string{"fuel-cell"}, out: []string{"heat", "spent-cell"}},
		def{name: "cell-assembly", in: []string{"spent-cell", "ore"}, out: []string{"fuel-cell"}},
	)
	d, err := subgraph.Decompose(recipe.Identity{}, g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"cell-assembly", "reactor"}}, names(d.Groups))
	// Before cycle merging only the reactor yields two products.
	assert.Equal(t, [][]string{{"reactor"}}, names(d.Simple))
}

func TestDecompose_Diamond(t *testing.T) {
	g := build(t,
		def{name: "oil-processing", in: []string{"crude"}, out: []string{"heavy", "light"}},
		def{name: "lubricant", in: []string{"heavy"}, out: []string{"lube"}},
		def{name: "solid-fuel", in: []string{"light"}, out: []string{"solid"}},
		def{name: "rocket-fuel-a", in: []string{"lube"}, out: []string{"rocket-fuel"}},
		def{name: "rocket-fuel-b", in: []string{"solid"}, out: []string{"rocket-fuel"}},
	)
	d, err := subgraph.Decompose(recipe.Identity{}, g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"lubricant", "oil-processing", "rocket-fuel-a", "rocket-fuel-b", "solid-fuel"},
	}, names(d.Groups))
	assert.Equal(t, [][]string{
		{"oil-processing"},
		{"rocket-fuel-a", "rocket-fuel-b"},
	}, names(d.Simple))
}

func TestDecompose_SinglePathIsNotADiamond(t *testing.T) {
	g := build(t,
		def{name: "oil-processing", in: []string{"crude"}, out: []string{"heavy", "light"}},
		def{name: "lubricant", in: []string{"heavy"}, out: []string{"lube"}},
		def{name: "grease-a", in: []string{"lube"}, out: []string{"grease"}},
		def{name: "grease-b", in: []string{"lube"}, out: []string{"grease"}},
	)
	d, err := subgraph.Decompose(recipe.Identity{}, g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"grease-a", "grease-b"},
		{"oil-processing"},
	}, names(d.Groups))
}

func TestDecompose_FuelCycle(t *testing.T) {
	defs := []def{
		{name: "steam-from-water", category: "boiler", in: []string{"water"}, out: []string{"steam"}},
		{name: "coal-from-steam", in: []string{"steam"}, out: []string{"coal"}},
	}

	g := build(t, defs...)
	d, err := subgraph.Decompose(recipe.Identity{}, g)
	require.NoError(t, err)
	assert.Empty(t, d.Groups)

	coal, err := g.Item("coal")
	require.NoError(t, err)
	d, err = subgraph.Decompose(boilerSpec{coal: coal}, g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"coal-from-steam", "steam-from-water"}}, names(d.Groups))
}

func TestDecompose_Deterministic(t *testing.T) {
	defs := []def{
		{name: "oil-processing", in: []string{"crude"}, out: []string{"heavy", "light"}},
		{name: "lubricant", in: []string{"heavy"}, out: []string{"lube"}},
		{name: "solid-fuel", in: []string{"light"}, out: []string{"solid"}},
		{name: "rocket-fuel-a", in: []string{"lube"}, out: []string{"rocket-fuel"}},
		{name: "rocket-fuel-b", in: []string{"solid"}, out: []string{"rocket-fuel"}},
		{name: "reactor", in: []string{"fuel-cell"}, out: []string{"heat", "spent-cell"}},
		{name: "cell-assembly", in: []string{"spent-cell", "ore"}, out: []string{"fuel-cell"}},
	}
	g := build(t, defs...)
	first, err := subgraph.Decompose(recipe.Identity{}, g)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := subgraph.Decompose(recipe.Identity{}, g)
		require.NoError(t, err)
		assert.Equal(t, names(first.Groups), names(again.Groups))
		assert.Equal(t, names(first.Simple), names(again.Simple))
	}
	assert.Len(t, first.Groups, 2)
}
