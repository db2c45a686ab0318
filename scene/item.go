package scene

import (
	"fmt"

	"github.com/milcktoast/sketchy"
)

// Line is a straight line primitive.
type Line struct {
	A, B        sketchy.Point
	StrokeWidth float64

	// Opacity is the line's own opacity (0.0 to 1.0).
	Opacity float64
}

// SetStrokeWidth sets the stroke width. Negative widths are clamped to 0.
func (l *Line) SetStrokeWidth(w float64) {
	if w < 0 {
		w = 0
	}
	l.StrokeWidth = w
}

// SetOpacity sets the line opacity, clamped to [0, 1].
func (l *Line) SetOpacity(a float64) {
	l.Opacity = clampAlpha(a)
}

// Bounds returns the bounding box of the stroked line.
func (l *Line) Bounds() sketchy.Rect {
	return sketchy.NewRect(l.A, l.B).Inset(-l.StrokeWidth / 2)
}

// Group is the output of one generation.
type Group struct {
	ID    string
	Lines []*Line

	// Opacity is applied to the group as a whole when it is composited.
	Opacity float64
}

// SetOpacity sets the group opacity, clamped to [0, 1].
func (g *Group) SetOpacity(a float64) {
	g.Opacity = clampAlpha(a)
}

// Translate moves every line of the group by (dx, dy).
func (g *Group) Translate(dx, dy float64) {
	d := sketchy.Pt(dx, dy)
	for _, l := range g.Lines {
		l.A = l.A.Add(d)
		l.B = l.B.Add(d)
	}
}

// Bounds returns the bounding box of the group's lines.
func (g *Group) Bounds() sketchy.Rect {
	r := sketchy.EmptyRect()
	for _, l := range g.Lines {
		r = r.Union(l.Bounds())
	}
	return r
}

// clampAlpha clamps alpha to the valid range [0, 1].
func clampAlpha(alpha float64) float64 {
	if alpha < 0 {
		return 0
	}
	if alpha > 1 {
		return 1
	}
	return alpha
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
