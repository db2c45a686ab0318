package sketchy

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// FlattenTolerance is the maximum distance between a curve and the
// polyline used to measure it.
const FlattenTolerance = 0.01

// Path represents a vector path that can be measured by arc length.
//
// Curves are flattened once into a polyline the first time the path is
// measured; any mutation invalidates that measurement.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point

	measured bool
	segments []segment
	length   float64
}

// segment is one straight piece of the flattened path.
type segment struct {
	a, b   Point
	offset float64 // arc length at a
	length float64
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// NewPolyline creates an open path through pts.
func NewPolyline(pts ...Point) *Path {
	p := NewPath()
	p.Polyline(pts...)
	return p
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.measured = false
}

// LineTo draws a line to a point.
// Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
	p.measured = false
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
	p.measured = false
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
	p.measured = false
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.measured = false
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.measured = false
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Polyline adds an open subpath through pts.
func (p *Path) Polyline(pts ...Point) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	// 4/3 * (sqrt(2) - 1)
	const k = 0.5522847498307936
	ox := rx * k
	oy := ry * k

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// Flatten returns the polyline vertices of every subpath in order.
func (p *Path) Flatten() [][]Point {
	var (
		out []Point
		all [][]Point
	)
	flush := func() {
		if len(out) > 0 {
			all = append(all, out)
		}
		out = nil
	}
	p.walk(func(pt Point, move bool) {
		if move {
			flush()
		}
		out = append(out, pt)
	})
	flush()
	return all
}

// Length returns the total arc length of the path. Closing segments count;
// the jump between subpaths does not.
func (p *Path) Length() float64 {
	p.measure()
	return p.length
}

// PointAt returns the point at the given arc-length offset from the start
// of the path. It reports false when the offset lies outside [0, Length()]
// or the path has no length.
func (p *Path) PointAt(offset float64) (Point, bool) {
	p.measure()
	if len(p.segments) == 0 || !(offset >= 0 && offset <= p.length) {
		return Point{}, false
	}

	// Binary search for the last segment starting at or before offset.
	lo, hi := 0, len(p.segments)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if p.segments[mid].offset <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	s := p.segments[lo]
	t := (offset - s.offset) / s.length
	if t > 1 {
		t = 1
	}
	return s.a.Lerp(s.b, t), true
}

// Bounds returns the bounding box of the flattened path.
func (p *Path) Bounds() Rect {
	r := EmptyRect()
	p.walk(func(pt Point, _ bool) {
		r = r.Expand(pt)
	})
	return r
}

// measure flattens the path into segments and caches the result.
func (p *Path) measure() {
	if p.measured {
		return
	}
	p.segments = p.segments[:0]
	p.length = 0

	var prev Point
	p.walk(func(pt Point, move bool) {
		if !move {
			if l := prev.Distance(pt); l > 0 {
				p.segments = append(p.segments, segment{a: prev, b: pt, offset: p.length, length: l})
				p.length += l
			}
		}
		prev = pt
	})
	p.measured = true
}

// walk visits every flattened vertex. move is true for the first vertex of
// each subpath.
func (p *Path) walk(fn func(pt Point, move bool)) {
	const tolSq = FlattenTolerance * FlattenTolerance

	var current, start Point
	started := false
	line := func(pt Point) { fn(pt, false) }

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			fn(e.Point, true)
			start = e.Point
			current = e.Point
			started = true
		case LineTo:
			fn(e.Point, false)
			current = e.Point
		case QuadTo:
			if !started {
				fn(current, true)
				started = true
			}
			flattenQuad(QuadBez{P0: current, P1: e.Control, P2: e.Point}, tolSq, line)
			current = e.Point
		case CubicTo:
			if !started {
				fn(current, true)
				started = true
			}
			flattenCubic(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, tolSq, line)
			current = e.Point
		case Close:
			if started && current != start {
				fn(start, false)
			}
			current = start
		}
	}
}
