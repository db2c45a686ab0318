// Package sketchy generates structural line drawings from vector paths.
//
// # Overview
//
// Points are sampled along existing paths (or collected from pointer input)
// and every pair of points whose distance falls strictly inside a length band
// is joined by a straight line. The stroke width of each line is mapped
// linearly from its length, and the lines of one generation are grouped so
// they can be selected, moved or deleted together.
//
// # Quick Start
//
//	import "github.com/milcktoast/sketchy"
//
//	p := sketchy.NewPath()
//	p.Circle(200, 200, 120)
//
//	pts := sketchy.Sample(p, sketchy.DivisionParams{Mode: sketchy.ByCount, Amount: 48})
//	lines := sketchy.Connect(pts, pts, true, sketchy.ConnectionParams{
//	    MinLength:      0,
//	    MaxLength:      100,
//	    MinStrokeWidth: 0.05,
//	    MaxStrokeWidth: 0.1,
//	})
//
//	group := sketchy.Compose(host, lines, sketchy.StyleParams{Opacity: 0.6})
//
// # Architecture
//
// The library is organized into:
//   - Core: Point, Path, Sample, Connect, MapRange, Compose
//   - Host: the scene package, an in-memory document implementing Host
//   - Protocols: the session package (pointer-driven and batch generation)
//   - Output: the export package (SVG and PNG)
//   - Configuration: the config package (YAML, validation, file watching)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package sketchy

// Version information
const (
	// Version is the current version of the library
	Version = "2.1.0"

	// VersionMajor is the major version
	VersionMajor = 2

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
