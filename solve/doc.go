// Package solve resolves target production rates into recipe rates.
//
// A Solver is prepared once per recipe graph with FindSubgraphs, which
// decomposes the graph (package subgraph) and builds one EquationSolver per
// solve group, ordered so that a group is solved before the groups it draws
// its inputs from.
//
// Solve then works in two stages:
//
//  1. Every target item is expanded recursively. An item with exactly one
//     producer outside any solve group divides its rate by the recipe's yield
//     and recurses into the recipe's ingredients and fuel. Any other item is
//     left in Totals.Unfinished.
//  2. Each EquationSolver whose outputs intersect the unfinished items builds
//     a linear program from its tableau and runs the simplex method. Rates of
//     group recipes are added directly; rates of input recipes are expanded
//     again through stage 1. Surplus outputs are reported as waste.
//
// All arithmetic is exact (package rational). A failing group is recorded in
// Totals.Errors and does not stop the other groups.
package solve
