package generator

import (
	"github.com/katalvlaran/mazepath/grid"
)

// origin is the first carved lattice cell and the Start position.
var origin = grid.Coord{Row: 1, Col: 1}

// Generate builds a height×width maze by randomized iterative depth-first
// carving on the odd-coordinate lattice. The carved cells form a spanning
// tree of the lattice, so every open cell is reachable from every other.
// Start is placed at (1,1) and End at (height-2, width-2).
//
// Returns grid.ErrInvalidDimensions (wrapped) unless both dimensions are odd
// and at least grid.MinSize.
//
// Complexity: O(H×W) time; O(H×W) worst-case stack memory.
func Generate(height, width int, opts ...Option) (*grid.Grid, error) {
	if err := grid.ValidateDimensions(height, width); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}

	g.Set(origin, grid.Open)
	cfg.onCarve(origin)
	stack := []grid.Coord{origin}
	candidates := make([]grid.Coord, 0, len(grid.Directions))

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range grid.Directions {
			next := top.Add(d.Scale(2))
			if g.InBounds(next) && g.At(next) == grid.Wall {
				candidates = append(candidates, d)
			}
		}

		// backtrack
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[cfg.rng.Intn(len(candidates))]
		between, next := top.Add(d), top.Add(d.Scale(2))
		g.Set(between, grid.Open)
		cfg.onCarve(between)
		g.Set(next, grid.Open)
		cfg.onCarve(next)
		stack = append(stack, next)
	}

	g.Set(origin, grid.Start)
	g.Set(grid.Coord{Row: height - 2, Col: width - 2}, grid.End)
	return g, nil
}
