// Package export writes scene documents to image formats.
//
// Exporters are looked up by format name through a registry. Two formats
// are built in:
//
//   - "svg": vector output, one <g> element per generated group
//   - "png": raster output via golang.org/x/image/vector
//
// Basic usage:
//
//	e, err := export.New("svg")
//	if err != nil {
//	    return err
//	}
//	err = e.Export(w, doc, export.DefaultOptions(800, 600))
package export

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/milcktoast/sketchy/scene"
)

// Exporter renders a document to an output format.
type Exporter interface {
	// Export writes doc to w.
	Export(w io.Writer, doc *scene.Document, opts Options) error
}

// Options controls the rendered canvas.
type Options struct {
	// Width and Height are the canvas size in document units.
	Width, Height int

	// Scale multiplies document coordinates and stroke widths in raster
	// output. Values <= 0 mean 1.
	Scale float64

	Background color.RGBA
	Stroke     color.RGBA

	// ShowSources also draws the source paths with SourceStroke.
	ShowSources  bool
	SourceStroke color.RGBA
}

// DefaultOptions returns black strokes on white for a w x h canvas.
func DefaultOptions(w, h int) Options {
	return Options{
		Width:        w,
		Height:       h,
		Scale:        1,
		Background:   color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Stroke:       color.RGBA{A: 0xff},
		SourceStroke: color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	}
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// ParseColor parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 4 {
		short := hex
		hex = ""
		for i := range len(short) {
			hex += string([]byte{short[i], short[i]})
		}
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("export: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("export: invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// hexColor formats c as "#rrggbb", ignoring alpha.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
