// Package prodrate computes exact production rates over recipe graphs.
//
// Given target rates for some items, prodrate finds how fast every recipe
// must run to sustain them. All arithmetic is rational, so 1/3 of a machine
// stays 1/3 and no rounding error accumulates through long chains.
//
// Most of a recipe graph is a tree and resolves by walking ingredients.
// The rest (recipes with several products, items with several producers,
// loops such as a reactor that returns spent cells) is cut into solve
// groups, and each group is solved as a linear program with an exact
// simplex. Resource use is minimised along a priority list, so scarce
// inputs are spent last.
//
// Packages, leaf to root:
//
//	rational/  immutable exact rationals with decimal and mixed formatting
//	matrix/    dense rational matrices and row operations
//	simplex/   in-place exact simplex with a pivot budget and hooks
//	dfs/       traversal, reachability, topological order and SCCs
//	recipe/    items, recipes and the graph that links them
//	factory/   machines, modules, beacons and fuel as a FactorySpec
//	subgraph/  decomposition of a graph into solve groups
//	solve/     per-group equation solver and the resolving Solver
//	dataset/   YAML recipe data files
//	config/    file, .env and PRODRATE_* environment settings
//	metrics/   Prometheus collector for solver activity
//
// The prodrate command (cmd/prodrate) wires these into solve, groups and
// watch subcommands; examples/oil_refinery is a runnable walkthrough.
//
// Quick example:
//
//	g := recipe.NewGraph()
//	g.AddRecipe("gear", "crafting", rational.Half,
//		[]recipe.Quantity{recipe.Q("plate", rational.FromInt(2))},
//		[]recipe.Quantity{recipe.Q("gear", rational.One)})
//	g.AddResourceRecipes()
//
//	s := solve.NewSolver(g)
//	_ = s.FindSubgraphs(nil)
//	totals, _ := s.Solve(map[string]rational.Rational{"gear": rational.FromInt(3)}, nil, nil)
//	// totals: gear 3, plate 6
package prodrate
