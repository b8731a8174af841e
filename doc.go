// Package layover finds the cheapest route between two labeled nodes of a
// small directed graph whose edges cost a travel time plus a fixed surcharge
// (a layover, a toll, a transfer fee) every time they are used.
//
// What is inside?
//
//	core/         append-only Graph model: ordered nodes, ordered edges,
//	              outgoing-edge index, first-match edge lookup
//	dijkstra/     single-source search (distance + predecessor maps) and
//	              route reconstruction with a per-hop cost breakdown
//	bfs/          fewest-hop search (ignores cost) for "fewest flights" queries
//	network/      edge-list sources: the built-in airport network and YAML files
//	config/       shell configuration (defaults, YAML file, environment)
//	logging/      log/slog logger factory
//	server/       gin HTTP front end: /route, /hops, /nodes, /health, /metrics
//	cmd/layover/  cobra CLI: route, hops, nodes, network, serve
//
// The root package is the two-call facade used by every front end:
//
//	g, err := layover.BuildGraph(network.Airports())
//	route, err := layover.FindRoute(g, "Atlanta", "Newark")
//	switch {
//	case errors.Is(err, layover.ErrNoPath):
//	    fmt.Println("No valid path found.")
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println(strings.Join(route.Lines(), "\n"))
//	}
//
// Quick ASCII example (effective weights):
//
//	    A ──2.6──▶ B ──5.7──▶ C
//	    │                     │
//	    └────────2.6───▶ D ◀─7.7┘
//
// A→D costs 2.6 directly, 10.0 through B and C.
package layover
