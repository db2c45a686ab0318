package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/milcktoast/sketchy/scene"
)

// svgPrecision is the number of integer SVG units per document unit.
// svgo takes integer coordinates, so geometry is written scaled up inside a
// group that scales it back down.
const svgPrecision = 100

func init() {
	Register("svg", func() Exporter { return SVG{} })
}

// SVG writes documents as SVG 1.1.
// Line endpoints are rounded to 1/svgPrecision (0.01) document units, so
// the output is accurate to that step and not to full float precision.
type SVG struct{}

// Export implements Exporter.
func (SVG) Export(w io.Writer, doc *scene.Document, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(opts.Width, opts.Height)
	canvas.Title("sketchy")
	if opts.Background.A > 0 {
		canvas.Rect(0, 0, opts.Width, opts.Height, "fill:"+hexColor(opts.Background))
	}
	canvas.Gtransform(fmt.Sprintf("scale(%g)", 1.0/svgPrecision))

	if opts.ShowSources {
		style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", hexColor(opts.SourceStroke), svgPrecision)
		for _, item := range doc.Paths() {
			for _, poly := range item.Path.Flatten() {
				xs := make([]int, len(poly))
				ys := make([]int, len(poly))
				for i, pt := range poly {
					xs[i], ys[i] = svgUnits(pt.X), svgUnits(pt.Y)
				}
				canvas.Polyline(xs, ys, style)
			}
		}
	}

	stroke := hexColor(opts.Stroke)
	for _, g := range doc.Groups() {
		canvas.Group(fmt.Sprintf(`id="g-%s"`, g.ID), fmt.Sprintf(`opacity="%.4g"`, g.Opacity))
		for _, l := range g.Lines {
			canvas.Line(
				svgUnits(l.A.X), svgUnits(l.A.Y),
				svgUnits(l.B.X), svgUnits(l.B.Y),
				fmt.Sprintf("stroke:%s;stroke-width:%.4g;opacity:%.4g;stroke-linecap:round",
					stroke, l.StrokeWidth*svgPrecision, l.Opacity),
			)
		}
		canvas.Gend()
	}

	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("export: svg: %w", ew.err)
	}
	return nil
}

func svgUnits(v float64) int {
	return int(math.Round(v * svgPrecision))
}

// errWriter remembers the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
