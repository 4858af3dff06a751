package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/pathsearch"
)

// ErrNoFrame is returned when a PNG renderer is asked for output before any
// snapshot was rendered.
var ErrNoFrame = errors.New("render: no frame rendered yet")

var _ pathsearch.Renderer = (*PNG)(nil)

// PNG keeps the latest snapshot and encodes it as a PNG image on demand.
type PNG struct {
	cellPixels int
	last       *grid.Grid
	title      string
}

// NewPNG returns a PNG renderer drawing each cell as a cellPixels square.
func NewPNG(cellPixels int) *PNG {
	return &PNG{cellPixels: cellPixels}
}

// Render records snapshot as the latest frame.
func (p *PNG) Render(snapshot *grid.Grid, title string) {
	p.last = snapshot
	p.title = title
}

// Title returns the title of the latest frame.
func (p *PNG) Title() string { return p.title }

// Image rasterizes the latest frame.
func (p *PNG) Image() (*image.RGBA, error) {
	if p.last == nil {
		return nil, ErrNoFrame
	}
	return Rasterize(p.last, p.cellPixels)
}

// Encode writes the latest frame to w in PNG format.
func (p *PNG) Encode(w io.Writer) error {
	pic, err := p.Image()
	if err != nil {
		return err
	}
	if err = png.Encode(w, pic); err != nil {
		return fmt.Errorf("render: encoding png: %w", err)
	}
	return nil
}

// Save writes the latest frame to the named file, creating or truncating it.
func (p *PNG) Save(path string) error {
	if p.last == nil {
		return ErrNoFrame
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	if err = p.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Rasterize draws g onto a composite canvas and flattens it to RGBA.
func Rasterize(g *grid.Grid, cellPixels int) (*image.RGBA, error) {
	canvas := image_utils.NewCompositeImage()
	if err := canvas.AddImage(NewPicture(g, cellPixels), image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: composing maze image: %w", err)
	}
	return image_utils.ToRGBA(canvas), nil
}
