package sketchy

import (
	"slices"

	"github.com/milcktoast/sketchy/internal/grid"
)

// LineDescriptor is one accepted connection between two points.
type LineDescriptor struct {
	A, B        Point
	StrokeWidth float64
}

// Connect joins every point of a with every point of b whose distance d
// satisfies MinLength < d < MaxLength. The stroke width of each line is d
// mapped from the length band onto the stroke range.
//
// When self is true, a and b are the same collection and only pairs (i, j)
// with j > i are considered, so no point is paired with itself and no
// unordered pair appears twice.
//
// Lines are returned in i-major, j-minor order.
func Connect(a, b []Point, self bool, params ConnectionParams) []LineDescriptor {
	var lines []LineDescriptor
	for i, p := range a {
		j := 0
		if self {
			j = i + 1
		}
		for ; j < len(b); j++ {
			if l, ok := connectPair(p, b[j], params); ok {
				lines = append(lines, l)
			}
		}
	}
	return lines
}

// ConnectIndexed returns exactly what Connect returns, in the same order,
// but only measures pairs whose points share or neighbour a grid cell of
// size MaxLength. It pays off when b is large.
func ConnectIndexed(a, b []Point, self bool, params ConnectionParams) []LineDescriptor {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	idx := grid.New(params.MaxLength)
	for j, q := range b {
		idx.Insert(j, q.X, q.Y)
	}

	var (
		lines      []LineDescriptor
		candidates []int
	)
	for i, p := range a {
		candidates = idx.Near(candidates[:0], p.X, p.Y)
		slices.Sort(candidates)
		for _, j := range candidates {
			if self && j <= i {
				continue
			}
			if l, ok := connectPair(p, b[j], params); ok {
				lines = append(lines, l)
			}
		}
	}
	return lines
}

func connectPair(p, q Point, params ConnectionParams) (LineDescriptor, bool) {
	d := p.Distance(q)
	if !(d > params.MinLength && d < params.MaxLength) {
		return LineDescriptor{}, false
	}
	return LineDescriptor{
		A:           p,
		B:           q,
		StrokeWidth: MapRange(d, params.MinLength, params.MaxLength, params.MinStrokeWidth, params.MaxStrokeWidth),
	}, true
}
