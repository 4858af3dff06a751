package pathsearch

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/adjacency"
	"github.com/katalvlaran/mazepath/grid"
)

// walker encapsulates mutable search state.
type walker struct {
	grid    *grid.Grid
	adj     adjacency.Map
	start   grid.Coord
	end     grid.Coord
	opts    Options
	queue   [][]grid.Coord
	visited mapset.Set[grid.Coord]
	res     *Result
}

// Solve runs breadth-first search over whole paths from start to end on adj,
// marking g in place and emitting a snapshot per iteration.
//
// On success the interior of the shortest path is marked OnPath (Start and
// End keep their states) and a final TitleSolved snapshot is emitted.
// If end is unreachable, Solve logs a warning, emits a TitleUnsolved
// snapshot and returns the Result together with ErrNoPath.
//
// Returns ErrGridNil, ErrOutOfBounds, ErrNoPath, or the context error on
// cancellation.
func Solve(g *grid.Grid, adj adjacency.Map, start, end grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v, end %v, grid %dx%d", ErrOutOfBounds, start, end, g.Height(), g.Width())
	}

	w := &walker{
		grid:    g,
		adj:     adj,
		start:   start,
		end:     end,
		opts:    o,
		queue:   make([][]grid.Coord, 0, len(adj)),
		visited: mapset.New[grid.Coord](),
		res:     &Result{Grid: g},
	}

	w.enqueue([]grid.Coord{start})
	return w.res, w.loop()
}

// enqueue marks the path tip visited and appends the path to the queue.
func (w *walker) enqueue(path []grid.Coord) {
	w.visited.Put(path[len(path)-1])
	w.queue = append(w.queue, path)
	w.res.Enqueued++
}

// dequeue pops the oldest path.
func (w *walker) dequeue() []grid.Coord {
	path := w.queue[0]
	w.queue[0] = nil
	w.queue = w.queue[1:]
	w.res.Steps++
	return path
}

// loop processes the queue until end is reached, the queue drains, or the
// context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		path := w.dequeue()
		current := path[len(path)-1]

		w.markFrontier(path)
		w.opts.Renderer.Render(w.grid.Clone(), TitleSolving)
		w.opts.OnDequeue(path)

		if current == w.end {
			w.markSolution(path)
			w.res.Path = path
			w.res.Found = true
			w.opts.Renderer.Render(w.grid.Clone(), TitleSolved)
			w.opts.Logger.WithFields(logrus.Fields{
				"steps":  w.res.Steps,
				"length": len(path) - 1,
			}).Debug("maze solved")
			return nil
		}

		for _, nbr := range w.adj.Neighbors(current) {
			if w.visited.Has(nbr) {
				continue
			}
			next := make([]grid.Coord, len(path)+1)
			copy(next, path)
			next[len(path)] = nbr
			w.enqueue(next)
		}
	}

	w.opts.Logger.WithFields(logrus.Fields{
		"start":   w.start.String(),
		"end":     w.end.String(),
		"steps":   w.res.Steps,
		"visited": w.visited.Size(),
	}).Warn("no path found from start point to end point")
	w.opts.Renderer.Render(w.grid.Clone(), TitleUnsolved)
	return ErrNoPath
}

// markFrontier marks path cells as Frontier, leaving Start, End and OnPath.
func (w *walker) markFrontier(path []grid.Coord) {
	for _, c := range path {
		switch w.grid.At(c) {
		case grid.Start, grid.End, grid.OnPath:
		default:
			w.grid.Set(c, grid.Frontier)
		}
	}
}

// markSolution marks path cells as OnPath, leaving Start and End.
func (w *walker) markSolution(path []grid.Coord) {
	for _, c := range path {
		switch w.grid.At(c) {
		case grid.Start, grid.End:
		default:
			w.grid.Set(c, grid.OnPath)
		}
	}
}
