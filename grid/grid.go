package grid

import (
	"fmt"
	"strings"
)

// ValidateDimensions reports ErrInvalidDimensions unless both height and
// width are odd and at least MinSize. The carving lattice only reaches every
// interior cell, and leaves room for Start and End, under those conditions.
func ValidateDimensions(height, width int) error {
	if height < MinSize || width < MinSize || height%2 == 0 || width%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, height, width)
	}
	return nil
}

// New allocates a height×width grid with every cell set to Wall.
// Returns ErrEmptyGrid if either dimension is below 1.
// Complexity: O(H×W) time and memory.
func New(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// Parse builds a grid from a text dump, one line per row, using the symbols
// returned by Cell.Symbol. A single leading and trailing newline is ignored
// so raw string literals can be used directly.
func Parse(text string) (*Grid, error) {
	text = strings.TrimPrefix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	width := len([]rune(lines[0]))
	g, err := New(len(lines), width)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(runes), width)
		}
		for c, sym := range runes {
			cell, err := CellFromSymbol(sym)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			g.cells[g.index(Coord{Row: r, Col: c})] = cell
		}
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// At returns the cell at c. Out-of-bounds coordinates read as Wall.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.index(c)]
}

// Set stores cell at c; out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = cell
	}
}

// Clone returns a deep copy of g, used as an immutable render snapshot.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Find returns the first coordinate, in row-major order, holding cell.
func (g *Grid) Find(cell Cell) (Coord, bool) {
	for i, v := range g.cells {
		if v == cell {
			return g.Coordinate(i), true
		}
	}
	return Coord{}, false
}

// Count returns how many cells hold the given state.
func (g *Grid) Count(cell Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == cell {
			n++
		}
	}
	return n
}

// ClearTransient resets every Frontier and OnPath cell back to Open.
func (g *Grid) ClearTransient() {
	for i, v := range g.cells {
		if v.Transient() {
			g.cells[i] = Open
		}
	}
}

// Equal reports whether g and other have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows renders each row as a string of cell symbols.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		sb.Reset()
		for c := 0; c < g.width; c++ {
			sb.WriteRune(g.cells[g.index(Coord{Row: r, Col: c})].Symbol())
		}
		rows[r] = sb.String()
	}
	return rows
}

// String returns the grid as newline-separated rows of symbols; Parse
// accepts it back unchanged.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// index maps c to a row-major index: row*width + col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.width + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}
