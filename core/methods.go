// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Node and edge insertion plus read-only queries on Graph.
// Determinism:
//   - Nodes() and Edges() return insertion order.
//   - FindEdge and Outgoing scan edges in insertion order (first inserted wins).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode appends label to the node set if it is not already present.
// Adding an existing label is a no-op.
//
// Errors:
//   - ErrEmptyLabel if label == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(label)

	return nil
}

// addNodeLocked inserts label if missing. Caller holds mu for writing.
func (g *Graph) addNodeLocked(label string) {
	if _, ok := g.index[label]; ok {
		return
	}
	g.index[label] = len(g.nodes)
	g.nodes = append(g.nodes, label)
}

// AddEdge inserts both endpoints when absent, then appends a new edge
// from→to with the given costs. Costs are stored as given; negative values
// are not rejected.
//
// Steps:
//  1. Validate labels (ErrEmptyLabel).
//  2. Lock mu, ensure from and to are nodes (in that order).
//  3. Append the edge to the edge list and to outgoing[from].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, travel, surcharge float64) (*Edge, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return nil, ErrEmptyLabel
	}

	// 2) Endpoints
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addNodeLocked(from)
	g.addNodeLocked(to)

	// 3) Store and index
	e := &Edge{From: from, To: to, Travel: travel, Surcharge: surcharge}
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], e)

	return e, nil
}

// AddEdges applies AddEdge to every EdgeSpec in order. It stops at the first
// failing entry; edges before it stay inserted.
// Complexity: O(len(list)).
func (g *Graph) AddEdges(list []EdgeSpec) error {
	for i, s := range list {
		if _, err := g.AddEdge(s.From, s.To, s.Travel, s.Surcharge); err != nil {
			return fmt.Errorf("edge %d (%q→%q): %w", i, s.From, s.To, err)
		}
	}

	return nil
}

// FindEdge returns the first inserted edge from→to, or false when none exists.
// Complexity: O(out-degree(from)).
func (g *Graph) FindEdge(from, to string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.outgoing[from] {
		if e.To == to {
			return e, true
		}
	}

	return nil, false
}

// HasNode reports whether label is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(label string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[label]

	return ok
}

// Nodes returns a copy of the node labels in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge list in insertion order.
// The *Edge values are shared; they are immutable.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Outgoing returns the edges leaving label in insertion order, or nil when
// label has none (or is not a node).
// Complexity: O(out-degree(label)).
func (g *Graph) Outgoing(label string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.outgoing[label]
	if len(src) == 0 {
		return nil
	}
	out := make([]*Edge, len(src))
	copy(out, src)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
