package render_test

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/adjacency"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/pathsearch"
	"github.com/katalvlaran/mazepath/render"
)

const corridor = `
#####
#S  #
### #
#  X#
#####
`

func mustParse(t *testing.T, text string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

func solve(t *testing.T, g *grid.Grid, r pathsearch.Renderer) *pathsearch.Result {
	t.Helper()
	adj, err := adjacency.Build(g)
	require.NoError(t, err)
	start, _ := g.Find(grid.Start)
	end, _ := g.Find(grid.End)
	res, err := pathsearch.Solve(g, adj, start, end, pathsearch.WithRenderer(r))
	require.NoError(t, err)
	return res
}

func TestText_Display(t *testing.T) {
	g := mustParse(t, "#S\nX+")
	var buf bytes.Buffer
	require.NoError(t, render.NewText(&buf).Display(g))
	assert.Equal(t, " # S\n X +\n", buf.String())
}

func TestText_DisplayColor(t *testing.T) {
	g := mustParse(t, "#S")
	var buf bytes.Buffer
	require.NoError(t, render.NewText(&buf, render.WithColor(true)).Display(g))
	assert.Equal(t, "\033[40m  \033[44m  \033[0m\n", buf.String())
}

func TestText_RenderFrames(t *testing.T) {
	var buf bytes.Buffer
	txt := render.NewText(&buf)
	solve(t, mustParse(t, corridor), txt)

	out := buf.String()
	assert.Equal(t, 6, txt.Frames())
	assert.Equal(t, 5, strings.Count(out, pathsearch.TitleSolving+"\n"))
	assert.True(t, strings.HasSuffix(out, pathsearch.TitleSolved+"\n # # # # #\n # S + + #\n # # # + #\n #     X #\n # # # # #\n"))
	assert.NoError(t, txt.Err())
}

func TestText_FinalOnly(t *testing.T) {
	var buf bytes.Buffer
	txt := render.NewText(&buf, render.WithFinalOnly())
	solve(t, mustParse(t, corridor), txt)

	assert.Equal(t, 1, txt.Frames())
	assert.True(t, strings.HasPrefix(buf.String(), pathsearch.TitleSolved+"\n"))
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestText_WriteErrorStopsOutput(t *testing.T) {
	w := &failingWriter{}
	txt := render.NewText(w)
	solve(t, mustParse(t, corridor), txt)

	require.EqualError(t, txt.Err(), "disk full")
	assert.Equal(t, 1, w.n)
	assert.Equal(t, 1, txt.Frames())
}

func TestPicture(t *testing.T) {
	g := mustParse(t, "#S\nX+")
	pic := render.NewPicture(g, 3)

	assert.Equal(t, 6, pic.Bounds().Dx())
	assert.Equal(t, 6, pic.Bounds().Dy())
	assert.Equal(t, render.Palette[grid.Wall], pic.At(2, 2))
	assert.Equal(t, render.Palette[grid.Start], pic.At(3, 0))
	assert.Equal(t, render.Palette[grid.End], pic.At(0, 5))
	assert.Equal(t, render.Palette[grid.OnPath], pic.At(5, 5))
	assert.Equal(t, color.Transparent, pic.At(6, 0))

	assert.Equal(t, 2, render.NewPicture(g, 0).Bounds().Dx())
}

func TestPNG_NoFrame(t *testing.T) {
	p := render.NewPNG(4)
	_, err := p.Image()
	assert.ErrorIs(t, err, render.ErrNoFrame)
	assert.ErrorIs(t, p.Save(filepath.Join(t.TempDir(), "x.png")), render.ErrNoFrame)
	assert.ErrorIs(t, p.Encode(&bytes.Buffer{}), render.ErrNoFrame)
}

func TestPNG_KeepsLatestFrame(t *testing.T) {
	p := render.NewPNG(2)
	solve(t, mustParse(t, corridor), p)
	assert.Equal(t, pathsearch.TitleSolved, p.Title())

	img, err := p.Image()
	require.NoError(t, err)
	b := img.Bounds()
	require.Equal(t, 10, b.Dx())
	require.Equal(t, 10, b.Dy())
	at := func(row, col int) color.Color {
		return img.At(b.Min.X+col*2, b.Min.Y+row*2)
	}
	assert.Equal(t, render.Palette[grid.Wall], at(0, 0))
	assert.Equal(t, render.Palette[grid.Start], at(1, 1))
	assert.Equal(t, render.Palette[grid.OnPath], at(1, 2))
	assert.Equal(t, render.Palette[grid.End], at(3, 3))
	assert.Equal(t, render.Palette[grid.Open], at(3, 1))
}

func TestPNG_SaveDecodes(t *testing.T) {
	p := render.NewPNG(3)
	solve(t, mustParse(t, corridor), p)

	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, p.Save(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 15, img.Bounds().Dx())
	assert.Equal(t, 15, img.Bounds().Dy())
}

func TestPNG_SaveBadPath(t *testing.T) {
	p := render.NewPNG(1)
	p.Render(mustParse(t, corridor), pathsearch.TitleSolved)
	err := p.Save(filepath.Join(t.TempDir(), "missing", "maze.png"))
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	rec := render.NewRecorder(0)
	solve(t, mustParse(t, corridor), rec)

	frames := rec.Frames()
	require.Len(t, frames, 6)
	assert.Equal(t, pathsearch.TitleSolving, frames[0].Title)
	assert.Equal(t, []string{"#####", "#S  #", "### #", "#  X#", "#####"}, frames[0].Rows)
	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, pathsearch.TitleSolved, last.Title)
	assert.Equal(t, "#S++#", last.Rows[1])
	assert.Zero(t, rec.Dropped())
}

func TestRecorder_Limit(t *testing.T) {
	rec := render.NewRecorder(2)
	solve(t, mustParse(t, corridor), rec)

	frames := rec.Frames()
	require.Len(t, frames, 3)
	assert.Equal(t, 3, rec.Dropped())
	assert.Equal(t, pathsearch.TitleSolved, frames[2].Title)
}

func TestRecorder_Empty(t *testing.T) {
	_, ok := render.NewRecorder(0).Last()
	assert.False(t, ok)
}
