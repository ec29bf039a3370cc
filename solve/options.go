package solve

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultPriority lists the recipes whose use is minimised, most expensive first.
var DefaultPriority = []string{"uranium-ore", "steam", "coal", "crude-oil", "water"}

// Recorder receives measurements from a Solver. metrics.Collector
// implements it for Prometheus.
type Recorder interface {
	Decomposed(groups int)
	GroupSolved(pivots int)
	GroupFailed()
	Resolved(d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) Decomposed(int)                {}
func (nopRecorder) GroupSolved(int)               {}
func (nopRecorder) GroupFailed()                  {}
func (nopRecorder) Resolved(time.Duration, error) {}

// Option configures a Solver or an EquationSolver.
type Option func(*Options)

// Options holds the tunables shared by Solver and EquationSolver.
type Options struct {
	// Ctx is checked by decomposition traversals and between simplex pivots;
	// defaults to context.Background().
	Ctx context.Context

	// Logger receives debug and warning entries; defaults to a discarding logger.
	Logger logrus.FieldLogger

	// Recorder receives measurements; defaults to a no-op.
	Recorder Recorder

	// Priority is the ordered list of recipe names whose use is minimised.
	// The first entry is the most expensive.
	Priority []string

	// MaxPivots is the simplex budget per group; <= 0 selects the simplex default.
	MaxPivots int
}

// DefaultOptions returns Options with DefaultPriority, no logging and no recording.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Ctx:      context.Background(),
		Logger:   l,
		Recorder: nopRecorder{},
		Priority: append([]string(nil), DefaultPriority...),
	}
}

// WithContext sets the context checked while decomposing and between simplex
// pivots. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder installs a measurement sink. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

// WithPriority replaces the priority list. An empty list disables priorities.
func WithPriority(names ...string) Option {
	return func(o *Options) {
		o.Priority = append([]string(nil), names...)
	}
}

// WithMaxPivots sets the simplex pivot budget per group.
func WithMaxPivots(n int) Option {
	return func(o *Options) {
		o.MaxPivots = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
