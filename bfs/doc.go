// Package bfs finds routes with the fewest edges over a core.Graph, ignoring
// costs: "fewest layovers" rather than "cheapest".
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node, following
//     directed edges only (Edge.From → Edge.To).
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - Honors a hop limit (WithMaxDepth) and context cancellation.
//
// Determinism
//
//	Neighbors are taken from core.Graph.Outgoing, which preserves edge
//	insertion order, so the visit sequence and the parent of every node are
//	reproducible. Parallel edges enqueue their target once.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "San Diego", bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	path, err := res.PathTo("Newark") // ErrNotReached if outside the limit
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if the start node does not exist.
//   - ErrOptionViolation  if an Option is invalid (negative MaxDepth).
//   - ErrNotReached       from PathTo when the destination was not visited.
//   - Wrapped errors returned by the OnVisit hook.
package bfs
