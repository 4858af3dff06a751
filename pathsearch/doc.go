// Package pathsearch solves a maze with breadth-first search over whole
// paths and exposes every intermediate state to a Renderer.
//
// What
//
//   - The queue holds complete coordinate paths starting at start, so the
//     winning path is available without a backtracking pass.
//   - Each iteration dequeues a path, marks its cells Frontier (Start, End and
//     OnPath cells are left alone), emits a "Solving Maze" snapshot and, if
//     the path ends at end, marks it OnPath and stops.
//   - Unvisited neighbours from adjacency.Map are marked visited on enqueue,
//     so each coordinate is enqueued at most once.
//
// Why
//
//   - BFS dequeues paths in non-decreasing length order: the first path to
//     reach end is a shortest one.
//   - Carrying full paths makes per-step Frontier animation trivial at the
//     cost of O(cells · path length) memory in the worst case.
//
// Concurrency
//
//	Single-threaded per call. Render is a synchronous callback; the context
//	is checked at the same per-iteration point, which is the only place a
//	caller can pace or abort the search.
//
// Options
//
//   - WithContext(ctx):   cancellation at the snapshot point.
//   - WithRenderer(r):    snapshot consumer (see render package).
//   - WithLogger(l):      logrus logger for the no-path report.
//   - WithOnDequeue(fn):  hook receiving each dequeued path.
//
// Errors
//
//   - ErrGridNil      if the grid pointer is nil.
//   - ErrOutOfBounds  if start or end lies outside the grid.
//   - ErrNoPath       if end is unreachable; the Result is still returned.
//   - ctx.Err()       if the context is done.
package pathsearch
