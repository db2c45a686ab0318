package config

import (
	"github.com/milcktoast/sketchy"
	"github.com/milcktoast/sketchy/scene"
)

// Build returns the path p describes.
func (p PathSpec) Build() *sketchy.Path {
	path := sketchy.NewPath()
	switch p.Kind {
	case "polyline":
		path.Polyline(points(p.Points)...)
		if p.Closed {
			path.Close()
		}
	case "rect":
		path.Rectangle(p.Origin[0], p.Origin[1], p.Size[0], p.Size[1])
	case "circle":
		path.Circle(p.Center[0], p.Center[1], p.Radius)
	case "ellipse":
		path.Ellipse(p.Center[0], p.Center[1], p.Radii[0], p.Radii[1])
	}
	return path
}

// IsSelected reports whether the path starts selected; unset means true.
func (p PathSpec) IsSelected() bool {
	return p.Selected == nil || *p.Selected
}

// Document builds a scene document holding the configured source paths.
func (f *File) Document() *scene.Document {
	doc := scene.NewDocument()
	for _, p := range f.Paths {
		doc.AddPath(p.Build(), p.IsSelected())
	}
	return doc
}

// Points converts the stroke's coordinates into points.
func (s StrokeSpec) Points() []sketchy.Point {
	return points(s.Coords)
}

func points(coords [][2]float64) []sketchy.Point {
	pts := make([]sketchy.Point, len(coords))
	for i, xy := range coords {
		pts[i] = sketchy.Pt(xy[0], xy[1])
	}
	return pts
}
