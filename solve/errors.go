package solve

import "errors"

var (
	// ErrNoRoute is returned when an item that must be produced has no recipe.
	ErrNoRoute = errors.New("solve: no recipe produces item")

	// ErrUnsolvable wraps the simplex failure of one solve group.
	ErrUnsolvable = errors.New("solve: group has no solution")

	// ErrNegativeRate is returned for a negative target rate.
	ErrNegativeRate = errors.New("solve: negative target rate")

	// ErrUnknownItem is returned for a target item the graph does not know.
	ErrUnknownItem = errors.New("solve: unknown item")

	// ErrCycle is returned when recursive expansion revisits an item on the
	// current path, or when solve groups depend on each other circularly.
	ErrCycle = errors.New("solve: cycle outside any solve group")

	// ErrNotPrepared is returned by Solve before FindSubgraphs succeeded.
	ErrNotPrepared = errors.New("solve: FindSubgraphs has not been called")

	// ErrEmptyGroup is returned by NewEquationSolver for an empty recipe list.
	ErrEmptyGroup = errors.New("solve: empty recipe group")
)
