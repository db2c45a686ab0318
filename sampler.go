package sketchy

import "math"

// Measurer is a path that can be sampled by arc length.
// *Path implements Measurer.
type Measurer interface {
	// Length returns the total arc length.
	Length() float64

	// PointAt resolves the point at an arc-length offset. It reports false
	// when no point exists there.
	PointAt(offset float64) (Point, bool)
}

// Sample divides path into points at regular arc-length offsets, starting
// at offset 0.
//
// With ByLength the step is Amount and the end is included when a step
// lands on it. With ByCount the step is Length()/Amount and the end is
// always included for a whole Amount.
// Offsets the path cannot resolve are skipped, so degenerate paths yield an
// empty collection. A step that is not a positive finite number returns nil.
func Sample(path Measurer, params DivisionParams) []Point {
	length := path.Length()
	if params.Mode == ByCount {
		return sampleCount(path, length, params.Amount)
	}

	step := params.Amount
	if !(step > 0) || math.IsInf(step, 1) {
		return nil
	}
	pts := make([]Point, 0, int(length/step)+1)
	for k := 0; ; k++ {
		offset := float64(k) * step
		if offset > length {
			break
		}
		if pt, ok := path.PointAt(offset); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// sampleCount places samples at k*length/n for every whole k <= n.
// Offsets are clamped to length and a whole n lands exactly on length, so
// rounding cannot drop or shift the end point.
func sampleCount(path Measurer, length, n float64) []Point {
	step := length / n
	if !(step > 0) || math.IsInf(step, 1) {
		return nil
	}
	pts := make([]Point, 0, int(n)+1)
	for k := 0; float64(k) <= n; k++ {
		// Scale before dividing so step error does not accumulate.
		offset := min(float64(k)*length/n, length)
		if float64(k) == n {
			offset = length
		}
		if pt, ok := path.PointAt(offset); ok {
			pts = append(pts, pt)
		}
	}
	return pts
}

// SampleMany samples every path and keeps one collection per path, in the
// order of paths.
func SampleMany(paths []Measurer, params DivisionParams) [][]Point {
	groups := make([][]Point, len(paths))
	for i, p := range paths {
		groups[i] = Sample(p, params)
	}
	return groups
}

// SampleFlat samples every path and concatenates the results in path order.
func SampleFlat(paths []Measurer, params DivisionParams) []Point {
	var pts []Point
	for _, p := range paths {
		pts = append(pts, Sample(p, params)...)
	}
	return pts
}
