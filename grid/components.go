package grid

// ConnectedComponents finds every 4-connected region of passable cells.
// Each component lists its coordinates in BFS discovery order; components
// appear in row-major order of their first cell.
//
// Time:   O(H·W).
// Memory: O(H·W) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord
	for i, v := range g.cells {
		if !v.Passable() || seen[i] {
			continue
		}
		comps = append(comps, g.flood(g.Coordinate(i), seen))
	}
	return comps
}

// Reachable returns every passable cell reachable from `from` through
// 4-directional moves, including `from` itself. A Wall origin yields nil.
func (g *Grid) Reachable(from Coord) []Coord {
	if !g.At(from).Passable() {
		return nil
	}
	return g.flood(from, make([]bool, len(g.cells)))
}

// flood runs a queue-based BFS from origin, marking seen and collecting cells.
func (g *Grid) flood(origin Coord, seen []bool) []Coord {
	seen[g.index(origin)] = true
	queue := []Coord{origin}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Directions {
			v := u.Add(d)
			if !g.At(v).Passable() {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}
