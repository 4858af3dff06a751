package render

import (
	"image"
	"image/color"

	"github.com/katalvlaran/mazepath/grid"
)

// Palette maps each cell state to its drawing colour.
var Palette = map[grid.Cell]color.RGBA{
	grid.Wall:     {R: 0, G: 0, B: 0, A: 255},
	grid.Open:     {R: 255, G: 255, B: 255, A: 255},
	grid.Start:    {R: 40, G: 90, B: 230, A: 255},
	grid.End:      {R: 230, G: 20, B: 20, A: 255},
	grid.OnPath:   {R: 40, G: 180, B: 70, A: 255},
	grid.Frontier: {R: 250, G: 210, B: 40, A: 255},
}

// Picture is an image.Image view over a grid where every cell is drawn as a
// cellPixels×cellPixels square. It reads the grid lazily; pass a snapshot.
type Picture struct {
	g          *grid.Grid
	cellPixels int
}

// NewPicture wraps g. cellPixels below 1 is treated as 1.
func NewPicture(g *grid.Grid, cellPixels int) *Picture {
	if cellPixels < 1 {
		cellPixels = 1
	}
	return &Picture{g: g, cellPixels: cellPixels}
}

func (p *Picture) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.g.Width()*p.cellPixels, p.g.Height()*p.cellPixels)
}

func (p *Picture) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Bounds()) {
		return color.Transparent
	}
	return Palette[p.g.At(grid.Coord{Row: y / p.cellPixels, Col: x / p.cellPixels})]
}
