package layover

import (
	"fmt"

	"github.com/katalvlaran/layover/core"
	"github.com/katalvlaran/layover/dijkstra"
)

// Re-exported sentinels so front ends can branch with errors.Is without
// importing the engine package.
var (
	ErrUnknownNode = dijkstra.ErrUnknownNode
	ErrNoPath      = dijkstra.ErrNoPath
	ErrMissingEdge = dijkstra.ErrMissingEdge
)

// BuildGraph creates a Graph from an edge list, inserting edges in order.
// Calling it twice with the same list yields graphs with identical node and
// edge membership and order.
func BuildGraph(edges []core.EdgeSpec) (*core.Graph, error) {
	g := core.NewGraph()
	if err := g.AddEdges(edges); err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	return g, nil
}

// FindRoute returns the cheapest route from start to target.
//
// Errors:
//   - ErrUnknownNode: start or target is not a node of g.
//   - ErrNoPath: target is not reachable from start (an expected outcome).
//   - ErrMissingEdge: returned together with a non-nil route whose gap hops
//     are marked; the graph and predecessor map disagree.
func FindRoute(g *core.Graph, start, target string) (*dijkstra.Route, error) {
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, target)
	}

	tree, err := dijkstra.ShortestPathsFrom(g, start)
	if err != nil {
		return nil, err
	}

	return dijkstra.ReconstructPath(g, tree.Prev, start, target)
}
