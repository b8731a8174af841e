// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph model used by the route engine:
// an ordered set of node labels and an ordered list of directed edges, each
// edge carrying a base travel cost plus a fixed surcharge paid whenever the
// edge is used.
//
// The model is append-only:
//
//   - Nodes keep their first-insertion order and are never duplicated.
//   - Edges keep insertion order; parallel edges between the same ordered
//     pair are allowed and are NOT deduplicated.
//   - Nothing is ever removed or modified after insertion.
//
// Nodes are created implicitly by AddEdge (both endpoints are inserted when
// absent) or explicitly by AddNode. The empty label is reserved: search results
// use "" as the "no predecessor" marker, so AddNode/AddEdge reject it with
// ErrEmptyLabel.
//
// Quick example:
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("Atlanta", "Chicago", 2.1, 0.5)
//	e, ok := g.FindEdge("Atlanta", "Chicago")
//	fmt.Println(ok, e.Weight()) // true 2.6
//
// Core methods:
//
//	AddNode(label string) error                                   // O(1) amortized
//	AddEdge(from, to string, travel, surcharge float64) (*Edge, error) // O(1) amortized
//	AddEdges(list []EdgeSpec) error                               // O(len(list))
//	FindEdge(from, to string) (*Edge, bool)                       // O(out-degree(from))
//	Outgoing(label string) []*Edge                                // O(out-degree)
//	Nodes() []string, Edges() []*Edge                             // O(V), O(E) copies
//
// Concurrency:
//
//	A single sync.RWMutex guards all collections. Readers (FindEdge, Outgoing,
//	Nodes, Edges, ...) may run in parallel; writers are serialized. A search
//	reads the graph through these accessors, so callers that mutate while
//	searching get a consistent view per call but not per search.
package core
