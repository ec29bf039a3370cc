package solve_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodrate/rational"
	"github.com/katalvlaran/prodrate/recipe"
	"github.com/katalvlaran/prodrate/solve"
)

func messages(hook *logtest.Hook) map[string]int {
	out := make(map[string]int)
	for _, e := range hook.AllEntries() {
		out[e.Message]++
	}

	return out
}

func TestSolve_LogsPivotsAndGroups(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	s := prepared(t, coProduction(t), nil, solve.WithPriority("v-mine"), solve.WithLogger(logger))

	_, err := s.Solve(map[string]rational.Rational{"W": n(10)}, nil, nil)
	require.NoError(t, err)

	got := messages(hook)
	assert.Equal(t, 1, got["recipe graph decomposed"])
	assert.Equal(t, 4, got["simplex pivot"])
	assert.Equal(t, 1, got["solve group solved"])

	var pivot *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "simplex pivot" {
			pivot = e
			break
		}
	}
	require.NotNil(t, pivot)
	assert.Equal(t, logrus.TraceLevel, pivot.Level)
	assert.Contains(t, pivot.Data, "group")
}

func TestSolve_LogsGroupFailure(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := prepared(t, coProduction(t), nil, solve.WithMaxPivots(1), solve.WithLogger(logger))

	totals, err := s.Solve(map[string]rational.Rational{"W": n(10)}, nil, nil)
	require.NoError(t, err)
	require.Len(t, totals.Errors, 1)

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.WarnLevel, last.Level)
	assert.Equal(t, "solve group failed", last.Message)
}

func TestSolve_PivotTraceFollowsLevel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := prepared(t, coProduction(t), nil, solve.WithPriority("v-mine"), solve.WithLogger(logger))

	_, err := s.Solve(map[string]rational.Rational{"W": n(10)}, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, messages(hook)["simplex pivot"])

	// An entry logs pivots once its logger is at trace level.
	logger.SetLevel(logrus.TraceLevel)
	hook.Reset()
	s = prepared(t, coProduction(t), nil, solve.WithPriority("v-mine"), solve.WithLogger(logger.WithField("run", "t")))

	_, err = s.Solve(map[string]rational.Rational{"W": n(10)}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, messages(hook)["simplex pivot"])
}

func TestFindSubgraphs_WarnsOnNoRoute(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	g := newGraph(t,
		rcp{name: "w-fine", in: []recipe.Quantity{q("V", 1)}, out: []recipe.Quantity{q("W", 1)}},
		rcp{name: "w-coarse", in: []recipe.Quantity{q("V", 2)}, out: []recipe.Quantity{q("W", 1)}},
	)
	prepared(t, g, nil, solve.WithLogger(logger))

	assert.Equal(t, 1, messages(hook)["solve group has no route"])
}
