// Package subgraph partitions a recipe graph into the groups that must be
// solved together as one linear program.
//
// Decompose works on an arena of groups, starting with one group per recipe,
// and merges in three passes:
//
//  1. Co-production: every recipe producing a given item joins one group.
//     The interesting groups at this point are kept as display groups.
//  2. Cycles: strongly connected components of the group graph, where a
//     group points at the groups producing its ingredients, are merged
//     (Kosaraju, dfs.StronglyConnected).
//  3. Diamonds: when an interesting group draws two different ingredients
//     through two different items of one upstream interesting group, the two
//     are merged together with every group lying on a path between them.
//
// A group is interesting when it holds more than one recipe or yields more
// than one product. Only interesting groups need the equation solver; the
// rest resolve by simple recursion.
//
// Results are deterministic: recipes are sorted by name and groups by the
// name of their first recipe.
package subgraph
