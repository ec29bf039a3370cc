// Package dfs implements depth-first traversal, strongly connected components
// and topological sort on directed graphs whose vertices are the integers
// 0..Order()-1. The recipe-graph decomposition uses it on groups of recipes
// (identified by arena index) and on items.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports cancellation via context.Context and full-forest traversal.
//   - StronglyConnected: Kosaraju's algorithm over a graph and its transpose.
//   - TopologicalSort: a linear ordering of a DAG, ErrCycleDetected otherwise.
//
// Why:
//   - Condense recipe cycles into single groups before solving.
//   - Order solve groups so that every group is solved before the groups it
//     draws inputs from.
//
// Key Types & Constants:
//
//   - Graph: Order() and Successors(v); Adjacency is the slice-backed implementation.
//   - VertexState: White, Gray, Black (visitation markers)
//   - DFSOptions / Option: Context, FullTraversal
//   - DFSResult: post-order, Visited
//
// Determinism:
//
//	Roots are tried in ascending vertex order and successors in the order the
//	graph returns them, so every result is reproducible for a given input.
//
// Complexity:
//
//   - DFS:               Time O(V+E), Memory O(V)
//   - StronglyConnected: Time O(V+E), Memory O(V)
//   - TopologicalSort:   Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start vertex out of range
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - ErrOrderMismatch        graph and transpose sizes differ
//   - context.Canceled        traversal canceled via context
package dfs
