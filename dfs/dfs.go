// Package dfs implements depth-first search (single-source and forest) on an
// integer-indexed Graph, with cancellation.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is outside the vertex range.
//   - context.Canceled          if ctx is done.
package dfs

import (
	"fmt"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components, starting new trees at unvisited vertices in ascending order;
// otherwise it starts only from start.
func DFS(g Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := buildOptions(opts)

	// 3. Single-source mode: verify start
	n := g.Order()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("dfs: DFS(%d) in graph of order %d: %w", start, n, ErrStartVertexNotFound)
	}

	// 4. Initialize result with capacity hint
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Visited: make([]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v); err != nil {
					return res, err
				}
			}
		}

		return res, nil
	}
	if err := walker.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits v, recursing into unvisited successors.
func (w *dfsWalker) traverse(v int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited
	w.res.Visited[v] = true

	// 3. Explore each successor
	for _, u := range w.graph.Successors(v) {
		if w.res.Visited[u] {
			continue
		}
		if err := w.traverse(u); err != nil {
			return err
		}
	}

	// 4. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}

// Reachable returns the vertices reachable from start (start included), in
// post-order. It is a thin convenience over DFS.
func Reachable(g Graph, start int, opts ...Option) ([]int, error) {
	res, err := DFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
