package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/layover/core"
)

type queueItem struct {
	label string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil, ErrStartNotFound or ErrOptionViolation for invalid
// input, the context error on cancellation, or a wrapped OnVisit error.
// On cancellation or hook error the partial result is returned alongside.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks label visited at depth d and records its parent.
func (w *walker) enqueue(label string, d int, parent string) {
	w.visited[label] = true
	w.res.Depth[label] = d
	if parent != "" {
		w.res.Parent[label] = parent
	}
	w.queue = append(w.queue, queueItem{label: label, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.label)
		if err := w.opts.OnVisit(item.label, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.label, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.graph.Outgoing(item.label) {
			if !w.visited[e.To] {
				w.enqueue(e.To, next, item.label)
			}
		}
	}

	return nil
}
