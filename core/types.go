// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, EdgeSpec, Graph, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// ErrEmptyLabel indicates that a node label is the empty string.
var ErrEmptyLabel = errors.New("core: node label is empty")

// Edge is a directed connection From→To.
//
// Travel is the base traversal cost, Surcharge the fixed extra cost paid every
// time the edge is used (a layover, a toll, a handling fee). Edges are
// immutable once added to a Graph.
type Edge struct {
	// From is the source node label.
	From string

	// To is the destination node label.
	To string

	// Travel is the base cost of traversing the edge.
	Travel float64

	// Surcharge is added to Travel whenever the edge is used.
	Surcharge float64
}

// Weight returns the effective weight of the edge: Travel + Surcharge.
// Complexity: O(1).
func (e *Edge) Weight() float64 { return e.Travel + e.Surcharge }

// EdgeSpec describes an edge to be inserted by AddEdges.
type EdgeSpec struct {
	From      string
	To        string
	Travel    float64
	Surcharge float64
}

// Graph is the append-only directed multigraph.
//
// nodes and edges keep insertion order; index maps a node label to its
// position in nodes; outgoing maps a node label to its outgoing edges in
// insertion order (the adjacency index used by search).
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes    []string
	index    map[string]int
	edges    []*Edge
	outgoing map[string][]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:    make(map[string]int),
		outgoing: make(map[string][]*Edge),
	}
}
