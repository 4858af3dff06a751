// Package adjacency derives a read-only neighbour map from a finished
// grid.Grid. Only passable (non-Wall) cells become keys; each key lists its
// passable cardinal neighbours in grid.Directions order.
package adjacency

import (
	"errors"

	"github.com/katalvlaran/mazepath/grid"
)

// ErrGridNil is returned when Build receives a nil grid.
var ErrGridNil = errors.New("adjacency: grid is nil")

// Map associates every passable coordinate with its passable neighbours.
// It is built once and must not be mutated afterwards.
type Map map[grid.Coord][]grid.Coord

// Build scans g and returns its adjacency Map. It never mutates g and is
// deterministic: two calls on the same grid yield Equal maps.
// Complexity: O(H×W) time and memory.
func Build(g *grid.Grid) (Map, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	m := make(Map, g.Size()-g.Count(grid.Wall))
	for i := 0; i < g.Size(); i++ {
		u := g.Coordinate(i)
		if !g.At(u).Passable() {
			continue
		}
		nbrs := make([]grid.Coord, 0, len(grid.Directions))
		for _, d := range grid.Directions {
			// At reads out-of-bounds cells as Wall.
			if v := u.Add(d); g.At(v).Passable() {
				nbrs = append(nbrs, v)
			}
		}
		m[u] = nbrs
	}
	return m, nil
}

// Neighbors returns the neighbours of c; nil if c is not a key.
func (m Map) Neighbors(c grid.Coord) []grid.Coord {
	return m[c]
}

// Has reports whether c is a passable coordinate of the source grid.
func (m Map) Has(c grid.Coord) bool {
	_, ok := m[c]
	return ok
}

// EdgeCount returns the number of undirected edges, assuming symmetry.
func (m Map) EdgeCount() int {
	n := 0
	for _, nbrs := range m {
		n += len(nbrs)
	}
	return n / 2
}

// IsSymmetric reports whether every b listed under a also lists a.
func (m Map) IsSymmetric() bool {
	for a, nbrs := range m {
		for _, b := range nbrs {
			if !contains(m[b], a) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether m and other hold the same keys with identical
// neighbour sequences.
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for k, a := range m {
		b, ok := other[k]
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

func contains(list []grid.Coord, c grid.Coord) bool {
	for _, v := range list {
		if v == c {
			return true
		}
	}
	return false
}
