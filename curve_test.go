package sketchy

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin, epsilon) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax, epsilon) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_WidthHeight(t *testing.T) {
	r := NewRect(Pt(10, 20), Pt(50, 80))
	if r.Width() != 40 {
		t.Errorf("Width() = %v, want 40", r.Width())
	}
	if r.Height() != 60 {
		t.Errorf("Height() = %v, want 60", r.Height())
	}
}

func TestRect_Empty(t *testing.T) {
	e := EmptyRect()
	if !e.IsEmpty() {
		t.Error("EmptyRect() should be empty")
	}

	r := NewRect(Pt(1, 2), Pt(3, 4))
	if got := e.Union(r); got != r {
		t.Errorf("EmptyRect().Union(r) = %v, want %v", got, r)
	}
	if got := e.Expand(Pt(7, 8)); got != NewRect(Pt(7, 8), Pt(7, 8)) {
		t.Errorf("EmptyRect().Expand(pt) = %v, want a zero-size rect at (7, 8)", got)
	}
}

func TestRect_Union(t *testing.T) {
	r1 := NewRect(Pt(0, 0), Pt(10, 10))
	r2 := NewRect(Pt(5, -5), Pt(20, 5))
	u := r1.Union(r2)

	if !pointsEqual(u.Min, Pt(0, -5), epsilon) || !pointsEqual(u.Max, Pt(20, 10), epsilon) {
		t.Errorf("Union = %v, want (0,-5)-(20,10)", u)
	}
}

func TestRect_Inset(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10)).Inset(-2)
	if !pointsEqual(r.Min, Pt(-2, -2), epsilon) || !pointsEqual(r.Max, Pt(12, 12), epsilon) {
		t.Errorf("Inset(-2) = %v, want (-2,-2)-(12,12)", r)
	}
}

// -------------------------------------------------------------------
// QuadBez Tests
// -------------------------------------------------------------------

func TestQuadBez_Eval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 0)},
		{"t=0.5", 0.5, Pt(5, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := q.Eval(tt.t)
			if !pointsEqual(result, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, result, tt.expect)
			}
		})
	}
}

func TestQuadBez_Subdivide(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}
	q1, q2 := q.Subdivide()

	if !pointsEqual(q1.P0, q.P0, epsilon) || !pointsEqual(q2.P2, q.P2, epsilon) {
		t.Error("Subdivide should preserve the end points")
	}
	if !pointsEqual(q1.P2, q2.P0, epsilon) {
		t.Errorf("halves do not meet: %v vs %v", q1.P2, q2.P0)
	}
	// The first half at t=0.5 lies at the parent's t=0.25.
	if !pointsEqual(q1.Eval(0.5), q.Eval(0.25), epsilon) {
		t.Errorf("q1.Eval(0.5) = %v, want %v", q1.Eval(0.5), q.Eval(0.25))
	}
}

// -------------------------------------------------------------------
// CubicBez Tests
// -------------------------------------------------------------------

func TestCubicBez_Eval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}

	if !pointsEqual(c.Eval(0), Pt(0, 0), epsilon) {
		t.Errorf("Eval(0) = %v, want (0, 0)", c.Eval(0))
	}
	if !pointsEqual(c.Eval(1), Pt(10, 0), epsilon) {
		t.Errorf("Eval(1) = %v, want (10, 0)", c.Eval(1))
	}
	if !pointsEqual(c.Eval(0.5), Pt(5, 7.5), epsilon) {
		t.Errorf("Eval(0.5) = %v, want (5, 7.5)", c.Eval(0.5))
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	c1, c2 := c.Subdivide()

	if !pointsEqual(c1.P3, c.Eval(0.5), epsilon) || !pointsEqual(c2.P0, c.Eval(0.5), epsilon) {
		t.Errorf("split point = %v/%v, want %v", c1.P3, c2.P0, c.Eval(0.5))
	}
	if !pointsEqual(c2.Eval(0.5), c.Eval(0.75), epsilon) {
		t.Errorf("c2.Eval(0.5) = %v, want %v", c2.Eval(0.5), c.Eval(0.75))
	}
}

// -------------------------------------------------------------------
// Flattening Tests
// -------------------------------------------------------------------

func TestFlattenCubic_WithinTolerance(t *testing.T) {
	const tol = 0.01
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 100), P2: Pt(100, 100), P3: Pt(100, 0)}

	var pts []Point
	flattenCubic(c, tol*tol, func(pt Point) { pts = append(pts, pt) })

	if len(pts) < 2 {
		t.Fatalf("flattenCubic emitted %d points, want several", len(pts))
	}
	if !pointsEqual(pts[len(pts)-1], c.P3, epsilon) {
		t.Errorf("last point = %v, want %v", pts[len(pts)-1], c.P3)
	}
	if pointsEqual(pts[0], c.P0, epsilon) {
		t.Error("flattenCubic should not emit the start point")
	}
}

func TestFlattenQuad_StraightLine(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 0), P2: Pt(10, 0)}

	var pts []Point
	flattenQuad(q, 1e-4, func(pt Point) { pts = append(pts, pt) })

	if len(pts) != 1 || pts[0] != Pt(10, 0) {
		t.Errorf("flattenQuad on a straight quad = %v, want [(10, 0)]", pts)
	}
}

func TestFlatten_NonFiniteTerminates(t *testing.T) {
	nan := math.NaN()
	const limit = 1 << maxFlattenDepth

	var quadCalls int
	flattenQuad(QuadBez{P0: Pt(nan, 10), P1: Pt(5, 10), P2: Pt(10, 0)}, 1e-4,
		func(Point) { quadCalls++ })
	if quadCalls == 0 || quadCalls > limit {
		t.Errorf("flattenQuad with NaN emitted %d points, want 1..%d", quadCalls, limit)
	}

	var cubicCalls int
	flattenCubic(CubicBez{P0: Pt(0, 0), P1: Pt(math.Inf(1), 0), P2: Pt(10, 10), P3: Pt(10, 0)}, 1e-4,
		func(Point) { cubicCalls++ })
	if cubicCalls == 0 || cubicCalls > limit {
		t.Errorf("flattenCubic with Inf emitted %d points, want 1..%d", cubicCalls, limit)
	}
}

// -------------------------------------------------------------------
// Point Tests
// -------------------------------------------------------------------

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 1)

	if got := p.Add(q); got != Pt(4, 5) {
		t.Errorf("Add = %v, want (4, 5)", got)
	}
	if got := p.Sub(q); got != Pt(2, 3) {
		t.Errorf("Sub = %v, want (2, 3)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.25); got != Pt(2.5, 5) {
		t.Errorf("Lerp = %v, want (2.5, 5)", got)
	}
}
