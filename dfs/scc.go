package dfs

import "fmt"

// StronglyConnected returns the strongly connected components of g using
// Kosaraju's two-pass algorithm. transpose must be g with every edge reversed
// (Adjacency.Transpose builds one).
//
// Implementation:
//   - Stage 1: full post-order DFS over g, roots in ascending order.
//   - Stage 2: walk the post-order backwards; each still-unvisited vertex roots
//     a DFS over transpose whose reach (restricted to unvisited vertices) is
//     one component.
//
// Components are returned in discovery order; each lists its vertices in the
// post-order of the Stage 2 walk. Every vertex belongs to exactly one component.
// WithContext is honoured in both stages; WithFullTraversal is implied.
//
// Complexity:
//   - Time O(V + E), Memory O(V).
func StronglyConnected(g, transpose Graph, opts ...Option) ([][]int, error) {
	if g == nil || transpose == nil {
		return nil, ErrGraphNil
	}
	if g.Order() != transpose.Order() {
		return nil, fmt.Errorf("dfs: StronglyConnected(%d, %d): %w", g.Order(), transpose.Order(), ErrOrderMismatch)
	}

	// Stage 1: finishing order on g.
	first, err := DFS(g, 0, append(append([]Option(nil), opts...), WithFullTraversal())...)
	if err != nil {
		return nil, err
	}
	ctx := buildOptions(opts).Ctx

	// Stage 2: components on the transpose in reverse finishing order.
	seen := make([]bool, transpose.Order())
	var components [][]int
	for i := len(first.Order) - 1; i >= 0; i-- {
		root := first.Order[i]
		if seen[root] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		components = append(components, collect(transpose, root, seen, nil))
	}

	return components, nil
}

// collect appends to out, in post-order, every unseen vertex reachable from v.
func collect(g Graph, v int, seen []bool, out []int) []int {
	seen[v] = true
	for _, u := range g.Successors(v) {
		if !seen[u] {
			out = collect(g, u, seen, out)
		}
	}

	return append(out, v)
}
