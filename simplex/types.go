package simplex

import (
	"context"
	"errors"
)

// DefaultMaxPivots bounds a single Solve call.
const DefaultMaxPivots = 10000

var (
	// ErrBadTableau indicates a nil tableau or one without at least one
	// constraint row, the cost row, one variable column and the RHS column.
	ErrBadTableau = errors.New("simplex: malformed tableau")

	// ErrUnbounded indicates that the entering column has no positive entry,
	// so the objective can be improved without limit.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrPivotLimit indicates that the pivot budget ran out before the cost row
	// became nonnegative.
	ErrPivotLimit = errors.New("simplex: pivot limit exceeded")
)

// Option configures a Solve call.
type Option func(*Options)

// Options holds the parameters of a Solve call.
type Options struct {
	// Ctx allows cancellation between pivots; defaults to context.Background().
	Ctx context.Context

	// MaxPivots is the pivot budget; values <= 0 select DefaultMaxPivots.
	MaxPivots int

	// OnPivot, if non-nil, is called after every pivot with its coordinates.
	OnPivot func(row, col int)
}

// DefaultOptions returns Options with a background context, the default
// pivot budget and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxPivots: DefaultMaxPivots,
	}
}

// WithContext sets the context checked between pivots. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPivots sets the pivot budget. Values <= 0 keep the default.
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxPivots = n
		}
	}
}

// WithOnPivot installs a post-pivot hook (metrics, debug logging).
func WithOnPivot(fn func(row, col int)) Option {
	return func(o *Options) {
		o.OnPivot = fn
	}
}

// Result reports what a successful Solve did.
type Result struct {
	// Pivots is the number of pivots performed.
	Pivots int
}
