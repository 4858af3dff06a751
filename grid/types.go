// Package grid defines the cell enumeration, coordinates, sentinel errors
// and the Grid type shared by the generator, adjacency and pathsearch
// packages of github.com/katalvlaran/mazepath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a height or width that is even or below MinSize.
	ErrInvalidDimensions = errors.New("grid: dimensions must be odd and at least 5")
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates parsed rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a rune in parsed text that maps to no Cell.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")
)

// MinSize is the smallest height or width accepted by ValidateDimensions.
const MinSize = 5

// Cell is the state of a single grid square. It is a closed set; the zero
// value is Wall.
type Cell uint8

const (
	// Wall blocks movement.
	Wall Cell = iota
	// Open is a carved, walkable cell.
	Open
	// Start is the single search origin.
	Start
	// End is the single search target.
	End
	// Frontier marks a cell on a path currently being explored.
	Frontier
	// OnPath marks a cell on the final shortest path.
	OnPath
)

// symbols holds the text-dump rune for each Cell, indexed by value.
var symbols = [...]rune{
	Wall:     '#',
	Open:     ' ',
	Start:    'S',
	End:      'X',
	Frontier: '*',
	OnPath:   '+',
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Start:
		return "start"
	case End:
		return "end"
	case Frontier:
		return "frontier"
	case OnPath:
		return "onPath"
	}
	return fmt.Sprintf("unknown cell: %d", uint8(c))
}

// Symbol returns the rune used for c in text dumps.
func (c Cell) Symbol() rune {
	if int(c) < len(symbols) {
		return symbols[c]
	}
	return '?'
}

// Passable reports whether movement through c is allowed.
func (c Cell) Passable() bool {
	return c != Wall
}

// Transient reports whether c is a search marking that ClearTransient removes.
func (c Cell) Transient() bool {
	return c == Frontier || c == OnPath
}

// CellFromSymbol maps a text-dump rune back to its Cell.
func CellFromSymbol(r rune) (Cell, error) {
	for i, s := range symbols {
		if s == r {
			return Cell(i), nil
		}
	}
	return Wall, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Scale returns c with both components multiplied by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Row: c.Row * k, Col: c.Col * k}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Directions lists the cardinal unit offsets in the order every package
// walks them: Down, Up, Right, Left.
var Directions = [4]Coord{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Grid is a fixed-size rectangular array of cells stored row-major.
// Its dimensions never change after construction.
type Grid struct {
	height, width int
	cells         []Cell
}
