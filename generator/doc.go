// Package generator carves random, always-solvable mazes into a grid.Grid.
//
// What
//
//   - Generate(height, width, opts...) starts from an all-Wall grid, opens
//     (1,1) and runs an iterative randomized depth-first search over the
//     odd-coordinate lattice using an explicit stack.
//   - Each step peeks the stack top, collects unvisited lattice cells two
//     steps away, picks one with the configured Rand, opens the wall cell in
//     between and the target, and pushes the target. A top with no candidates
//     is popped (backtrack).
//   - Start is (1,1); End is (height-2, width-2).
//
// Why
//
//   - The carved cells form a spanning tree of the lattice: the maze is
//     connected and acyclic, so it is solvable by construction.
//   - The explicit stack keeps memory bounded and avoids deep recursion on
//     very large grids.
//
// Options
//
//   - WithRand(r):    explicit random source (any Intn-capable handle).
//   - WithSeed(s):    reproducible *rand.Rand seeded with s.
//   - WithOnCarve(fn): hook fired for each carved cell, in order.
//
// Errors
//
//   - grid.ErrInvalidDimensions if height or width is even or below 5.
package generator
