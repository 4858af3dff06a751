// Package mazepath generates random perfect mazes and solves them with a
// breadth-first search whose progress can be watched frame by frame.
//
// What is inside?
//
//	grid/        the cell grid: states, coordinates, parsing, components
//	generator/   randomized depth-first carving on the odd-cell lattice
//	adjacency/   passable-neighbour map built from a grid
//	pathsearch/  BFS over whole paths with Frontier/OnPath marking and
//	             a Renderer hook receiving grid snapshots
//	render/      Renderer implementations: text, PNG, in-memory recorder
//	config/      .env and MAZE_* environment settings
//	server/      gin HTTP API returning solved mazes as JSON
//	cmd/         mazesolver (terminal) and mazeweb (HTTP) binaries
//
// Pipeline:
//
//	g, _ := generator.Generate(21, 21, generator.WithSeed(7))
//	adj, _ := adjacency.Build(g)
//	res, err := pathsearch.Solve(g, adj, grid.Coord{Row: 1, Col: 1},
//		grid.Coord{Row: 19, Col: 19}, pathsearch.WithRenderer(render.NewText(os.Stdout)))
//
// Walls are '#', open cells ' ', Start 'S', End 'X', explored cells '*' and
// the final route '+'.
package mazepath
