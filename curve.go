package sketchy

import "math"

// Curve types used to build and flatten paths.
// Based on kurbo patterns, adapted for Go idioms.

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// EmptyRect returns a rectangle that contains nothing. Any Union or
// Expand with it yields the other operand.
func EmptyRect() Rect {
	return Rect{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Expand returns the smallest rectangle containing r and pt.
func (r Rect) Expand(pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, pt.X), Y: math.Min(r.Min.Y, pt.Y)},
		Max: Point{X: math.Max(r.Max.X, pt.X), Y: math.Max(r.Max.Y, pt.Y)},
	}
}

// Inset grows (d < 0) or shrinks (d > 0) the rectangle on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Point{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// flatness returns the squared distance bound used to stop subdivision.
func (c CubicBez) flatness() float64 {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - c.P0.X - 2*c.P3.X
	vy := 3*c.P2.Y - c.P0.Y - 2*c.P3.Y
	return math.Max(ux*ux, vx*vx) + math.Max(uy*uy, vy*vy)
}

// maxFlattenDepth bounds curve subdivision. Non-finite control points
// never become flat; at this depth the curve is emitted as is.
const maxFlattenDepth = 16

// flattenQuad emits the end points of line segments approximating q,
// excluding q.P0.
func flattenQuad(q QuadBez, toleranceSq float64, fn func(pt Point)) {
	flattenQuadDepth(q, toleranceSq, maxFlattenDepth, fn)
}

func flattenQuadDepth(q QuadBez, toleranceSq float64, depth int, fn func(pt Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	d := q.P1.Sub(mid)
	if depth == 0 || d.X*d.X+d.Y*d.Y <= toleranceSq {
		fn(q.P2)
		return
	}
	q1, q2 := q.Subdivide()
	flattenQuadDepth(q1, toleranceSq, depth-1, fn)
	flattenQuadDepth(q2, toleranceSq, depth-1, fn)
}

// flattenCubic emits the end points of line segments approximating c,
// excluding c.P0.
func flattenCubic(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	flattenCubicDepth(c, toleranceSq, maxFlattenDepth, fn)
}

func flattenCubicDepth(c CubicBez, toleranceSq float64, depth int, fn func(pt Point)) {
	if depth == 0 || c.flatness() <= toleranceSq*16 {
		fn(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubicDepth(c1, toleranceSq, depth-1, fn)
	flattenCubicDepth(c2, toleranceSq, depth-1, fn)
}
