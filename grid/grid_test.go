package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateDimensions covers accepted and rejected sizes.
func TestValidateDimensions(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
		ok            bool
	}{
		{"Minimal", 5, 5, true},
		{"Rectangular", 7, 21, true},
		{"EvenHeight", 6, 5, false},
		{"EvenWidth", 5, 8, false},
		{"TooSmall", 3, 3, false},
		{"Negative", -5, 5, false},
		{"Zero", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := grid.ValidateDimensions(tc.height, tc.width)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, grid.ErrInvalidDimensions)
		})
	}
}

// TestNew checks allocation and the all-Wall initial state.
func TestNew(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 12, g.Size())
	assert.Equal(t, 12, g.Count(grid.Wall))

	_, err = grid.New(0, 4)
	assert.True(t, errors.Is(err, grid.ErrEmptyGrid))
}

// TestAtSetBounds verifies out-of-bounds reads are Wall and writes are ignored.
func TestAtSetBounds(t *testing.T) {
	g, _ := grid.New(2, 2)
	g.Set(grid.Coord{Row: 1, Col: 1}, grid.Open)
	g.Set(grid.Coord{Row: 5, Col: 5}, grid.Open)

	assert.Equal(t, grid.Open, g.At(grid.Coord{Row: 1, Col: 1}))
	assert.Equal(t, grid.Wall, g.At(grid.Coord{Row: -1, Col: 0}))
	assert.Equal(t, 1, g.Count(grid.Open))
	assert.False(t, g.InBounds(grid.Coord{Row: 2, Col: 0}))
	assert.True(t, g.InBounds(grid.Coord{Row: 0, Col: 1}))
}

// TestParseRoundTrip parses a dump and renders it back unchanged.
func TestParseRoundTrip(t *testing.T) {
	text := "#####\n" +
		"#S*+#\n" +
		"### #\n" +
		"#  X#\n" +
		"#####"
	g, err := grid.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, text, g.String())

	start, ok := g.Find(grid.Start)
	require.True(t, ok)
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, start)
	end, ok := g.Find(grid.End)
	require.True(t, ok)
	assert.Equal(t, grid.Coord{Row: 3, Col: 3}, end)
}

// TestParseErrors checks every rejection path of Parse.
func TestParseErrors(t *testing.T) {
	_, err := grid.Parse("")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.Parse("###\n##")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.Parse("#?#")
	assert.ErrorIs(t, err, grid.ErrUnknownSymbol)
}

// TestCloneIsDeep ensures a snapshot does not observe later writes.
func TestCloneIsDeep(t *testing.T) {
	g, _ := grid.New(3, 3)
	snap := g.Clone()
	g.Set(grid.Coord{Row: 1, Col: 1}, grid.Open)

	assert.Equal(t, grid.Wall, snap.At(grid.Coord{Row: 1, Col: 1}))
	assert.False(t, g.Equal(snap))
	assert.True(t, g.Equal(g.Clone()))
}

// TestClearTransient resets Frontier and OnPath only.
func TestClearTransient(t *testing.T) {
	g, err := grid.Parse("S*+X#")
	require.NoError(t, err)
	g.ClearTransient()
	assert.Equal(t, "S  X#", g.String())
}

// TestCellSymbols checks the symbol table is a bijection over all states.
func TestCellSymbols(t *testing.T) {
	for _, c := range []grid.Cell{grid.Wall, grid.Open, grid.Start, grid.End, grid.Frontier, grid.OnPath} {
		back, err := grid.CellFromSymbol(c.Symbol())
		require.NoError(t, err)
		assert.Equal(t, c, back, "symbol %q", c.Symbol())
	}
	assert.False(t, grid.Wall.Passable())
	assert.True(t, grid.Frontier.Passable())
	assert.Equal(t, '?', grid.Cell(42).Symbol())
	assert.Contains(t, grid.Cell(42).String(), "unknown")
}
