// File: path.go
// Role: rebuild a start→target route from a predecessor map and report the
// effective weight of every hop.

package dijkstra

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/layover/core"
)

// costDecimals is the rounding applied when rendering costs, so that float
// noise (2.3+0.3 = 2.5999999999999996) prints as 2.6.
const costDecimals = 9

// Hop is one step of a Route. Missing is set when the graph has no direct
// edge between From and To; Cost is then zero and excluded from the total.
type Hop struct {
	From    string
	To      string
	Cost    float64
	Missing bool
}

// Route is a reconstructed cheapest path.
//
// Path runs from start to target inclusive; a self-route has Path = [start]
// and no hops. Total is the sum of the costs of all non-missing hops,
// accumulated in path order.
type Route struct {
	Path  []string
	Hops  []Hop
	Total float64
}

// ReconstructPath walks prev back from target to a node without predecessor,
// reverses the walk, and checks that it begins at start.
//
// Returns:
//
//   - (*Route, nil) on success.
//   - (nil, ErrUnknownNode) if start or target has no entry in prev.
//   - (nil, ErrNoPath) if the walk does not begin at start (target unreached,
//     or a broken or cyclic predecessor chain).
//   - (*Route, ErrMissingEdge) if some consecutive path nodes have no direct
//     edge in g; the gap hops are marked Missing.
//
// Complexity: O(L · out-degree) where L is the path length.
func ReconstructPath(g *core.Graph, prev map[string]string, start, target string) (*Route, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, ok := prev[start]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, start)
	}
	if _, ok := prev[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, target)
	}

	// 2) Walk back target → ... → node with no predecessor.
	//    A valid chain visits each node at most once, so a longer walk is a cycle.
	path := make([]string, 0, 8)
	for cur := target; cur != ""; cur = prev[cur] {
		if len(path) > len(prev) {
			return nil, ErrNoPath
		}
		path = append(path, cur)
	}

	// 3) Reverse into start → target order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path[0] != start {
		return nil, ErrNoPath
	}

	// 4) Cost every hop
	route := &Route{Path: path}
	missing := 0
	for i := 0; i+1 < len(path); i++ {
		from, to := path[i], path[i+1]
		e, ok := g.FindEdge(from, to)
		if !ok {
			route.Hops = append(route.Hops, Hop{From: from, To: to, Missing: true})
			missing++
			continue
		}
		w := e.Weight()
		route.Hops = append(route.Hops, Hop{From: from, To: to, Cost: w})
		route.Total += w
	}

	if missing > 0 {
		return route, fmt.Errorf("%w: %d of %d hops from %q to %q", ErrMissingEdge, missing, len(route.Hops), start, target)
	}

	return route, nil
}

// Lines renders the route as human-readable cost lines:
//
//	"<from> -> <to>: <cost> units" per hop,
//	"No direct edge between <from> and <to>" per missing hop,
//	"Total travel time: <total> units" last.
func (r *Route) Lines() []string {
	out := make([]string, 0, len(r.Hops)+1)
	for _, h := range r.Hops {
		if h.Missing {
			out = append(out, fmt.Sprintf("No direct edge between %s and %s", h.From, h.To))
			continue
		}
		out = append(out, fmt.Sprintf("%s -> %s: %s units", h.From, h.To, FormatCost(h.Cost)))
	}
	out = append(out, fmt.Sprintf("Total travel time: %s units", FormatCost(r.Total)))

	return out
}

// MissingHops returns the hops that had no direct edge.
func (r *Route) MissingHops() []Hop {
	var out []Hop
	for _, h := range r.Hops {
		if h.Missing {
			out = append(out, h)
		}
	}

	return out
}

// FormatCost prints c rounded to costDecimals in its shortest form
// ("2.6", "10", "0").
func FormatCost(c float64) string {
	if math.IsInf(c, 0) || math.IsNaN(c) {
		return strconv.FormatFloat(c, 'f', -1, 64)
	}
	scale := math.Pow10(costDecimals)
	rounded := math.Round(c*scale) / scale
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}

	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
