package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/pathsearch"
)

// ANSI background colours per cell state.
const (
	ansiReset  = "\033[0m"
	ansiBlack  = "\033[40m"
	ansiRed    = "\033[41m"
	ansiGreen  = "\033[42m"
	ansiYellow = "\033[43m"
	ansiBlue   = "\033[44m"
	ansiWhite  = "\033[47m"
)

var ansiCell = map[grid.Cell]string{
	grid.Wall:     ansiBlack,
	grid.Open:     ansiWhite,
	grid.Start:    ansiBlue,
	grid.End:      ansiRed,
	grid.OnPath:   ansiGreen,
	grid.Frontier: ansiYellow,
}

var _ pathsearch.Renderer = (*Text)(nil)

// Text writes snapshots as text to an io.Writer. It is the terminal
// counterpart of an animated window: every frame is a title line followed
// by the grid.
type Text struct {
	w         io.Writer
	color     bool
	delay     time.Duration
	finalOnly bool
	frames    int
	err       error
}

// TextOption configures a Text renderer.
type TextOption func(*Text)

// WithColor draws cells as ANSI-coloured blocks instead of symbols.
func WithColor(on bool) TextOption {
	return func(t *Text) { t.color = on }
}

// WithDelay sleeps d after every intermediate frame to pace the animation.
func WithDelay(d time.Duration) TextOption {
	return func(t *Text) {
		if d > 0 {
			t.delay = d
		}
	}
}

// WithFinalOnly skips intermediate "Solving Maze" frames.
func WithFinalOnly() TextOption {
	return func(t *Text) { t.finalOnly = true }
}

// NewText returns a Text renderer writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render writes one titled frame. Write errors are kept and reported by Err;
// after the first error further frames are skipped.
func (t *Text) Render(snapshot *grid.Grid, title string) {
	intermediate := title == pathsearch.TitleSolving
	if t.err != nil || (intermediate && t.finalOnly) {
		return
	}
	t.frames++
	if _, err := fmt.Fprintf(t.w, "%s\n", title); err != nil {
		t.err = err
		return
	}
	if err := t.Display(snapshot); err != nil {
		t.err = err
		return
	}
	if intermediate && t.delay > 0 {
		time.Sleep(t.delay)
	}
}

// Display dumps g once, with no title: one line per row, each cell as a
// space followed by its symbol, or as a coloured block when colour is on.
func (t *Text) Display(g *grid.Grid) error {
	var sb strings.Builder
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			cell := g.At(grid.Coord{Row: r, Col: c})
			if t.color {
				sb.WriteString(ansiCell[cell])
				sb.WriteString("  ")
				continue
			}
			sb.WriteByte(' ')
			sb.WriteRune(cell.Symbol())
		}
		if t.color {
			sb.WriteString(ansiReset)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(t.w, sb.String())
	return err
}

// Frames returns how many frames were written.
func (t *Text) Frames() int { return t.frames }

// Err returns the first write error, if any.
func (t *Text) Err() error { return t.err }
