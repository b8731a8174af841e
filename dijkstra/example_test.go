// Package dijkstra_test provides examples demonstrating the search and the
// route breakdown. Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/layover/core"
	"github.com/katalvlaran/layover/dijkstra"
)

// ExampleShortestPathsFrom shows that the surcharge makes a cheap-looking
// chain of flights more expensive than a single direct one.
func ExampleShortestPathsFrom() {
	// 1) Build a directed graph: every edge has a travel cost and a surcharge.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1, 2) // effective 3
	_, _ = g.AddEdge("B", "C", 1, 2) // effective 3
	_, _ = g.AddEdge("A", "C", 5, 0) // effective 5

	// 2) Search from A.
	tree, err := dijkstra.ShortestPathsFrom(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) A→C direct (5) beats A→B→C (6).
	fmt.Printf("dist[C]=%s, prev[C]=%s\n", dijkstra.FormatCost(tree.Dist["C"]), tree.Prev["C"])
	// Output: dist[C]=5, prev[C]=A
}

// ExampleReconstructPath prints the per-hop breakdown, and the no-path case.
func ExampleReconstructPath() {
	g := core.NewGraph()
	_ = g.AddEdges([]core.EdgeSpec{
		{From: "Atlanta", To: "Chicago", Travel: 2.1, Surcharge: 0.5},
		{From: "Chicago", To: "San Francisco", Travel: 4.7, Surcharge: 1.0},
		{From: "San Diego", To: "Newark", Travel: 5.8, Surcharge: 1.0},
	})

	tree, _ := dijkstra.ShortestPathsFrom(g, "Atlanta")

	route, err := dijkstra.ReconstructPath(g, tree.Prev, "Atlanta", "San Francisco")
	if err == nil {
		fmt.Println(strings.Join(route.Lines(), "\n"))
	}

	_, err = dijkstra.ReconstructPath(g, tree.Prev, "Atlanta", "Newark")
	fmt.Println(errors.Is(err, dijkstra.ErrNoPath))

	// Output:
	// Atlanta -> Chicago: 2.6 units
	// Chicago -> San Francisco: 5.7 units
	// Total travel time: 8.3 units
	// true
}
