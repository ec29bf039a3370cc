// Package dfs defines the graph abstraction, types and options for depth-first
// traversal, including cancellation and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil Graph is passed to DFS,
	// TopologicalSort or StronglyConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is outside [0, Order()).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOrderMismatch indicates that a graph and its transpose disagree on
	// the number of vertices.
	ErrOrderMismatch = errors.New("dfs: graph and transpose differ in order")
)

// Graph is a directed graph over the dense vertex set 0..Order()-1.
// Successors must return a stable order; traversal results follow it.
type Graph interface {
	Order() int
	Successors(v int) []int
}

// Adjacency is a Graph stored as adjacency lists: a[v] lists the successors of v.
type Adjacency [][]int

// Order returns the number of vertices.
func (a Adjacency) Order() int { return len(a) }

// Successors returns the successors of v (not copied).
func (a Adjacency) Successors(v int) []int { return a[v] }

// Transpose returns the graph with every edge reversed. Successor lists of the
// result are ordered by source vertex.
func (a Adjacency) Transpose() Adjacency {
	t := make(Adjacency, len(a))
	for u, succ := range a {
		for _, v := range succ {
			t[v] = append(t[v], u)
		}
	}

	return t
}

// Option configures optional behavior of DFS traversal.
// DFS, Reachable and StronglyConnected accept it.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with a background context and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		FullTraversal: false,
	}
}

func buildOptions(opts []Option) DFSOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Visited marks every vertex reached by the traversal.
	Visited []bool
}
