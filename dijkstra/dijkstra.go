// File: dijkstra.go
// Role: lazy-deletion Dijkstra over the outgoing-edge index.
//
// Notes on implementation choices:
//
//   - The start label is validated against the graph; an unknown start is an
//     error rather than a silent all-infinity result.
//   - Outgoing edges come from the graph's adjacency index instead of a scan
//     of the full edge list per popped node. Results are identical.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and discarding entries whose cost exceeds the best-known distance.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/layover/core"
)

// ShortestPathsFrom computes the cheapest effective cost from start to every
// node of g, together with the predecessor of each reached node.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrUnknownNode).
//
// Options customization:
//
//   - WithMaxCost(c): nodes costing more than c stay unreached (c ≥ 0).
//   - WithSettleHook(fn): observe settled nodes in order.
//
// Costs are used as stored. An edge with a NaN or +Inf weight never relaxes
// its target. A cycle of negative total weight makes the search loop forever;
// callers must not pass one.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(V + E)
func ShortestPathsFrom(g *core.Graph, start string, opts ...Option) (*Tree, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}

	// 3) Prepare state sized to the node set
	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		pq:      make(costPQ, 0, len(nodes)),
	}

	// 4) Initialize and run
	r.init(nodes, start)
	r.process()

	return &Tree{Start: start, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph        // read-only input
	options Options            // MaxCost, OnSettle
	dist    map[string]float64 // node → best-known cost from start
	prev    map[string]string  // node → predecessor on the best-known path
	pq      costPQ             // min-heap with lazy deletion
	seq     uint64             // push counter, last tie-break key
}

// init sets every distance to +Inf and every predecessor to "", then seeds
// the heap with (0, start).
func (r *runner) init(nodes []string, start string) {
	for _, v := range nodes {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[start] = 0

	heap.Init(&r.pq)
	r.push(start, 0)
}

// process pops entries until the heap is empty. Stale entries (cost above
// the node's best-known distance) are skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*costItem)

		// Lazy deletion
		if item.cost > r.dist[item.node] {
			continue
		}

		if r.options.OnSettle != nil {
			r.options.OnSettle(item.node, item.cost)
		}
		r.relax(item.node, item.cost)
	}
}

// relax examines every outgoing edge of u (settled at cost d) and records a
// strictly cheaper route to its destination.
func (r *runner) relax(u string, d float64) {
	for _, e := range r.g.Outgoing(u) {
		candidate := d + e.Weight()
		if candidate > r.options.MaxCost {
			continue
		}
		// Strictly less: equal-cost alternatives keep the first predecessor,
		// and a NaN candidate never updates.
		if !(candidate < r.dist[e.To]) {
			continue
		}
		r.dist[e.To] = candidate
		r.prev[e.To] = u
		r.push(e.To, candidate)
	}
}

func (r *runner) push(node string, cost float64) {
	r.seq++
	heap.Push(&r.pq, &costItem{node: node, cost: cost, seq: r.seq})
}

// costItem is a heap entry: a node and the cumulative cost it was pushed with.
type costItem struct {
	node string
	cost float64
	seq  uint64
}

// costPQ is a min-heap of *costItem ordered by cost, then node label, then
// push sequence.
type costPQ []*costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	if pq[i].node != pq[j].node {
		return pq[i].node < pq[j].node
	}

	return pq[i].seq < pq[j].seq
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *costItem.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costItem)) }

// Pop is called by heap.Pop.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
