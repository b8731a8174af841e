// Package dijkstra computes cheapest routes on a core.Graph whose edges carry
// a travel cost plus a fixed surcharge.
//
// Overview:
//
//   - ShortestPathsFrom runs single-source Dijkstra from one start node and
//     returns a Tree: a total Distance map (math.Inf(1) for unreached nodes)
//     and a total Predecessor map ("" for the start and for unreached nodes).
//   - ReconstructPath walks a Predecessor map back from a target and produces a
//     Route: the node sequence, one Hop per edge with its effective weight,
//     and the accumulated total.
//   - The quantity minimized is the effective weight Travel + Surcharge.
//
// Performance and complexity:
//
//   - Time:  O(E log E). Outgoing edges come from the graph's adjacency index,
//     and every strict improvement pushes one heap entry.
//   - Space: O(V + E) for the maps and the heap under lazy deletion.
//
// Lazy deletion:
//
//	container/heap has no decrease-key. An improved distance pushes a new
//	entry; when an entry is popped with a cost above the node's best-known
//	distance it is stale and discarded.
//
// Determinism:
//
//	Heap ties are broken by node label, then by push order, so the settle
//	order and the predecessor chosen on equal-cost paths are stable across runs.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:     the graph pointer is nil.
//   - ErrUnknownNode:  start (or target) is not a node of the graph.
//   - ErrNoPath:       the target is not reachable. This is an expected outcome,
//     in the spirit of sql.ErrNoRows, not a fault.
//   - ErrMissingEdge:  two consecutive path nodes have no direct edge; the Route
//     is still returned with the gap marked, and the error flags the
//     inconsistency so callers can log it.
//   - ErrBadMaxCost:   raised (via panic) by WithMaxCost for a negative or NaN cap.
//
// Negative weights are not rejected, but results are not guaranteed for them,
// and a cycle of negative total weight never terminates. NaN and +Inf edge
// weights are ignored by relaxation.
//
// Example:
//
//	tree, err := dijkstra.ShortestPathsFrom(g, "Atlanta")
//	if err != nil {
//	    return err
//	}
//	route, err := dijkstra.ReconstructPath(g, tree.Prev, "Atlanta", "Newark")
//	switch {
//	case errors.Is(err, dijkstra.ErrNoPath):
//	    fmt.Println("No valid path found.")
//	case err != nil:
//	    return err
//	default:
//	    fmt.Println(strings.Join(route.Lines(), "\n"))
//	}
package dijkstra
