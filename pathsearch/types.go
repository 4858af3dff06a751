// Package pathsearch provides tunable options, the Renderer capability and
// error definitions for breadth-first maze solving.
package pathsearch

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for Solve.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathsearch: grid is nil")

	// ErrOutOfBounds is returned when start or end lies outside the grid.
	ErrOutOfBounds = errors.New("pathsearch: coordinate out of bounds")

	// ErrNoPath is returned, together with a non-nil Result, when the queue
	// drains without reaching end. It signals a disconnected maze, not a
	// failed run: the partially explored grid is still usable.
	ErrNoPath = errors.New("pathsearch: no path found from start to end")
)

// Snapshot titles passed to Renderer.Render.
const (
	TitleSolving  = "Solving Maze"
	TitleSolved   = "Solved Maze"
	TitleUnsolved = "No Path Found"
)

// Renderer receives grid snapshots during a search. Implementations must not
// retain expectations about the live grid: each snapshot is an independent
// copy. Render must return promptly; Solve waits for nothing else.
type Renderer interface {
	Render(snapshot *grid.Grid, title string)
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc func(snapshot *grid.Grid, title string)

// Render calls f(snapshot, title).
func (f RendererFunc) Render(snapshot *grid.Grid, title string) { f(snapshot, title) }

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize Solve.
type Options struct {
	// Ctx is checked once per iteration, at the snapshot point.
	Ctx context.Context

	// Renderer receives one snapshot per dequeued path and one final snapshot.
	Renderer Renderer

	// Logger reports the no-path condition and run summaries.
	Logger logrus.FieldLogger

	// OnDequeue is called with each dequeued path after it is marked.
	// The slice must not be modified.
	OnDequeue func(path []grid.Coord)
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a Renderer that discards snapshots
//   - logrus.StandardLogger()
//   - a no-op OnDequeue hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Renderer:  RendererFunc(func(*grid.Grid, string) {}),
		Logger:    logrus.StandardLogger(),
		OnDequeue: func([]grid.Coord) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRenderer registers the snapshot consumer.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithLogger replaces the default logrus logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnDequeue registers a callback run for every dequeued path.
func WithOnDequeue(fn func(path []grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// Result holds the outcome of Solve:
//   - Grid: the same grid passed in, mutated with Frontier/OnPath markings.
//   - Path: the shortest path start→end inclusive; nil when not Found.
//   - Found: whether end was reached.
//   - Steps: number of dequeued paths (and Solving snapshots).
//   - Enqueued: number of paths ever enqueued, including the seed.
type Result struct {
	Grid     *grid.Grid
	Path     []grid.Coord
	Found    bool
	Steps    int
	Enqueued int
}

// Length returns the number of moves on Path, or -1 when not Found.
func (r *Result) Length() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
