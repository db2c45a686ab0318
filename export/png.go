package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/milcktoast/sketchy"
	"github.com/milcktoast/sketchy/scene"
)

func init() {
	Register("png", func() Exporter { return PNG{} })
}

// PNG rasterizes documents into RGBA images.
//
// Lines are stroked as quads. A group of opaque lines is rasterized into a
// single coverage mask before the group opacity is applied, so overlapping
// lines inside it do not darken each other. Translucent lines are
// composited one by one.
type PNG struct{}

// Export implements Exporter.
func (PNG) Export(w io.Writer, doc *scene.Document, opts Options) error {
	img := Rasterize(doc, opts)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: png: %w", err)
	}
	return nil
}

// Rasterize renders doc into a new image of the scaled canvas size.
func Rasterize(doc *scene.Document, opts Options) *image.RGBA {
	s := opts.scale()
	bounds := image.Rect(0, 0, int(math.Ceil(float64(opts.Width)*s)), int(math.Ceil(float64(opts.Height)*s)))
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(opts.Background), image.Point{}, draw.Src)

	r := &raster{img: img, scale: s}

	if opts.ShowSources {
		var quads []quad
		for _, item := range doc.Paths() {
			for _, poly := range item.Path.Flatten() {
				for i := 1; i < len(poly); i++ {
					if q, ok := lineQuad(poly[i-1], poly[i], 1/s); ok {
						quads = append(quads, q)
					}
				}
			}
		}
		r.fill(quads, opts.SourceStroke, 1)
	}

	for _, g := range doc.Groups() {
		if opaqueLines(g) {
			quads := make([]quad, 0, len(g.Lines))
			for _, l := range g.Lines {
				if q, ok := lineQuad(l.A, l.B, l.StrokeWidth); ok {
					quads = append(quads, q)
				}
			}
			r.fill(quads, opts.Stroke, g.Opacity)
			continue
		}
		for _, l := range g.Lines {
			if q, ok := lineQuad(l.A, l.B, l.StrokeWidth); ok {
				r.fill([]quad{q}, opts.Stroke, l.Opacity*g.Opacity)
			}
		}
	}
	return img
}

// opaqueLines reports whether every line of g has full opacity.
func opaqueLines(g *scene.Group) bool {
	for _, l := range g.Lines {
		if l.Opacity < 1 {
			return false
		}
	}
	return true
}

// quad is a stroked line segment in document units.
type quad [4]sketchy.Point

// lineQuad returns the rectangle covering a stroke of width w from a to b.
func lineQuad(a, b sketchy.Point, w float64) (quad, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || w <= 0 {
		return quad{}, false
	}
	n := sketchy.Pt(-d.Y, d.X).Mul(w / 2 / l)
	return quad{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, true
}

type raster struct {
	img   *image.RGBA
	scale float64
	z     vector.Rasterizer
}

// fill rasterizes the union of quads and composites c at the given opacity.
func (r *raster) fill(quads []quad, c color.RGBA, opacity float64) {
	if len(quads) == 0 || opacity <= 0 {
		return
	}

	box := sketchy.EmptyRect()
	for _, q := range quads {
		for _, p := range q {
			box = box.Expand(p.Mul(r.scale))
		}
	}
	area := image.Rect(
		int(math.Floor(box.Min.X)), int(math.Floor(box.Min.Y)),
		int(math.Ceil(box.Max.X)), int(math.Ceil(box.Max.Y)),
	).Intersect(r.img.Bounds())
	if area.Empty() {
		return
	}

	r.z.Reset(area.Dx(), area.Dy())
	r.z.DrawOp = draw.Over
	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	for _, q := range quads {
		for i, p := range q {
			x := float32(p.X*r.scale - ox)
			y := float32(p.Y*r.scale - oy)
			if i == 0 {
				r.z.MoveTo(x, y)
			} else {
				r.z.LineTo(x, y)
			}
		}
		r.z.ClosePath()
	}

	src := image.NewUniform(premultiply(c, opacity))
	r.z.Draw(r.img, area, src, image.Point{})
}

// premultiply scales c by opacity and returns it as a premultiplied color.
func premultiply(c color.RGBA, opacity float64) color.RGBA {
	a := float64(c.A) / 0xff * math.Min(opacity, 1)
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * a)),
		G: uint8(math.Round(float64(c.G) * a)),
		B: uint8(math.Round(float64(c.B) * a)),
		A: uint8(math.Round(0xff * a)),
	}
}
