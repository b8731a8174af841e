package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search and path reconstruction.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnknownNode indicates that a start or target label is not a node of the graph.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrNoPath indicates that the target cannot be reached from the start.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrMissingEdge indicates that two consecutive nodes of a reconstructed path
	// have no direct edge in the graph.
	ErrMissingEdge = errors.New("dijkstra: missing edge during reconstruction")

	// ErrBadMaxCost indicates that MaxCost was set to a negative or NaN value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures ShortestPathsFrom.
//
// MaxCost:  nodes whose cheapest cost exceeds this cap are left unreached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// OnSettle: called once per settled node, in settle order, with its final cost.
type Options struct {
	MaxCost  float64
	OnSettle func(node string, cost float64)
}

// Option represents a functional option for configuring ShortestPathsFrom.
type Option func(*Options)

// WithMaxCost caps the explored cost. Negative or NaN values panic with
// ErrBadMaxCost, since they are programming errors rather than runtime input.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithSettleHook registers fn to observe every settled node.
func WithSettleHook(fn func(node string, cost float64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns the options used when none are given:
// MaxCost = +Inf, no settle hook.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

// Tree is the result of a single-source search.
//
// Dist and Prev are total over the graph's nodes at search time:
// Dist[Start] == 0, Dist[v] == +Inf for unreached v; Prev[Start] == "" and
// Prev[v] == "" for unreached v.
type Tree struct {
	Start string
	Dist  map[string]float64
	Prev  map[string]string
}

// Reachable reports whether label was reached from Start.
func (t *Tree) Reachable(label string) bool {
	d, ok := t.Dist[label]

	return ok && !math.IsInf(d, 1) && !math.IsNaN(d)
}

// Distance returns the cheapest cost to label and whether it was reached.
func (t *Tree) Distance(label string) (float64, bool) {
	if !t.Reachable(label) {
		return math.Inf(1), false
	}

	return t.Dist[label], true
}
