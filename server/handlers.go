package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/layover"
	"github.com/katalvlaran/layover/bfs"
	"github.com/katalvlaran/layover/core"
)

// Messages shown to clients; they mirror the CLI wording.
const (
	msgBothRequired = "both fields are required"
	msgNoPath       = "No valid path found."
)

// RouteResponse is the body of GET /route.
type RouteResponse struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Path    []string `json:"path"`
	Lines   []string `json:"lines"`
	Total   *float64 `json:"total,omitempty"`
	Message string   `json:"message,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

// HopsResponse is the body of GET /hops.
type HopsResponse struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Path    []string `json:"path"`
	Hops    int      `json:"hops"`
	Message string   `json:"message,omitempty"`
}

// NodesResponse is the body of GET /nodes.
type NodesResponse struct {
	Nodes []string `json:"nodes"`
}

// Handlers serves route queries against one graph built at start-up.
type Handlers struct {
	graph  *core.Graph
	logger *slog.Logger
}

// NewHandlers constructs Handlers. The graph must not be mutated afterwards.
func NewHandlers(logger *slog.Logger, g *core.Graph) *Handlers {
	return &Handlers{graph: g, logger: logger}
}

// HandleRoute handles GET /route?from=<label>&to=<label>.
//
// Response:
//
//	200 OK: RouteResponse with path and lines, or with message when no path exists
//	400 Bad Request: from or to is empty
//	404 Not Found: from or to is not a node of the graph
//	500 Internal Server Error: the route has hops without a direct edge
func (h *Handlers) HandleRoute(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	logger := h.logger.With("request_id", c.GetString(requestIDKey), "from", from, "to", to)

	if from == "" || to == "" {
		routeRequests.WithLabelValues(outcomeInvalid).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBothRequired})
		return
	}

	started := time.Now()
	route, err := layover.FindRoute(h.graph, from, to)
	routeDuration.Observe(time.Since(started).Seconds())

	resp := RouteResponse{From: from, To: to}
	switch {
	case errors.Is(err, layover.ErrUnknownNode):
		routeRequests.WithLabelValues(outcomeUnknownNode).Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return

	case errors.Is(err, layover.ErrNoPath):
		routeRequests.WithLabelValues(outcomeNoPath).Inc()
		resp.Message = msgNoPath
		c.JSON(http.StatusOK, resp)
		return

	case errors.Is(err, layover.ErrMissingEdge):
		routeRequests.WithLabelValues(outcomeInconsistent).Inc()
		logger.Warn("route has hops without a direct edge", "error", err, "gaps", len(route.MissingHops()))
		resp.Path, resp.Lines, resp.Total = route.Path, route.Lines(), &route.Total
		resp.Warning = err.Error()
		c.JSON(http.StatusInternalServerError, resp)
		return

	case err != nil:
		logger.Error("route search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	routeRequests.WithLabelValues(outcomeFound).Inc()
	logger.Debug("route found", "hops", len(route.Hops), "total", route.Total)
	resp.Path, resp.Lines, resp.Total = route.Path, route.Lines(), &route.Total
	c.JSON(http.StatusOK, resp)
}

// HandleHops handles GET /hops?from=<label>&to=<label>[&max=<n>] and returns
// the route with the fewest flights, ignoring cost.
//
// Response:
//
//	200 OK: HopsResponse with path, or with message when to is not reached
//	400 Bad Request: from or to is empty, or max is not a non-negative integer
//	404 Not Found: from or to is not a node of the graph
func (h *Handlers) HandleHops(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBothRequired})
		return
	}

	maxHops := 0
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max must be a non-negative integer"})
			return
		}
		maxHops = n
	}

	if !h.graph.HasNode(to) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%v: %q", layover.ErrUnknownNode, to)})
		return
	}

	res, err := bfs.BFS(h.graph, from, bfs.WithContext(c.Request.Context()), bfs.WithMaxDepth(maxHops))
	switch {
	case errors.Is(err, bfs.ErrStartNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("hop search failed", "request_id", c.GetString(requestIDKey), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := HopsResponse{From: from, To: to}
	path, err := res.PathTo(to)
	if err != nil {
		resp.Message = msgNoPath
		c.JSON(http.StatusOK, resp)
		return
	}
	resp.Path, resp.Hops = path, len(path)-1
	c.JSON(http.StatusOK, resp)
}

// HandleNodes handles GET /nodes and lists labels in insertion order.
func (h *Handlers) HandleNodes(c *gin.Context) {
	c.JSON(http.StatusOK, NodesResponse{Nodes: h.graph.Nodes()})
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "nodes": h.graph.NodeCount(), "edges": h.graph.EdgeCount()})
}
