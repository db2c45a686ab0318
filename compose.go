package sketchy

// Primitive is a host line object with settable styling.
type Primitive interface {
	SetStrokeWidth(w float64)
	SetOpacity(a float64)
}

// GroupHandle is a host group object wrapping the output of one generation.
type GroupHandle interface {
	SetOpacity(a float64)
}

// Host creates the rendered objects for generated lines.
type Host interface {
	// NewLine creates a straight line primitive from a to b.
	NewLine(a, b Point) Primitive

	// NewGroup groups items into a single selectable object.
	NewGroup(items []Primitive) GroupHandle
}

// Compose renders lines through host and groups all of them together.
//
// With PerSegment the style opacity is set on each line as it is created;
// with PerGroup it is set once on the resulting group. The group is created
// even when lines is empty.
func Compose(host Host, lines []LineDescriptor, style StyleParams) GroupHandle {
	items := make([]Primitive, 0, len(lines))
	for _, l := range lines {
		prim := host.NewLine(l.A, l.B)
		prim.SetStrokeWidth(l.StrokeWidth)
		if style.Scope == PerSegment {
			prim.SetOpacity(style.Opacity)
		}
		items = append(items, prim)
	}

	group := host.NewGroup(items)
	if style.Scope == PerGroup {
		group.SetOpacity(style.Opacity)
	}
	return group
}
