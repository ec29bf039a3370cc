package subgraph

import "errors"

// ErrNilGraph is returned when Decompose is called without a recipe graph.
var ErrNilGraph = errors.New("subgraph: recipe graph is nil")
