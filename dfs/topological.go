package dfs

import (
	"context"
	"fmt"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

// WithCancelContext makes TopologicalSort stop with ctx.Err() once ctx is
// done. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	graph Graph
	ctx   context.Context
	state []int // VertexState per vertex
	post  []int
}

// TopologicalSort orders the vertices of g so that every edge u→v has u
// before v. Solve groups use it to run producers of shared inputs after the
// groups that consume them.
//
// Roots are tried in ascending order and successors in the order g returns
// them, so equal inputs give equal orders.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrCycleDetected, naming the vertex that closed the cycle.
//   - ctx.Err() after cancellation.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&o)
	}

	n := g.Order()
	ts := &topoSorter{graph: g, ctx: o.ctx, state: make([]int, n), post: make([]int, 0, n)}
	for v := 0; v < n; v++ {
		if ts.state[v] != White {
			continue
		}
		if err := ts.visit(v); err != nil {
			return nil, err
		}
	}

	return Reverse(ts.post), nil
}

func (ts *topoSorter) visit(v int) error {
	if err := ts.ctx.Err(); err != nil {
		return err
	}
	switch ts.state[v] {
	case Gray:
		return fmt.Errorf("dfs: back edge to %d: %w", v, ErrCycleDetected)
	case Black:
		return nil
	}

	ts.state[v] = Gray
	for _, u := range ts.graph.Successors(v) {
		if err := ts.visit(u); err != nil {
			return err
		}
	}
	ts.state[v] = Black
	ts.post = append(ts.post, v)

	return nil
}

// Reverse returns a reversed copy of s.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, x := range s {
		out[len(s)-1-i] = x
	}

	return out
}
