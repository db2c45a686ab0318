// Package scene provides an in-memory retained document that hosts source
// paths and generated line groups.
//
// A Document implements sketchy.Host, so generated lines land in it as
// Line items wrapped in Groups, and it answers the "selected paths" query
// used by the session protocols.
//
// Every path and group carries a UUID so that the output of one generation
// can be selected, moved or deleted as a unit.
//
// Thread safety: Document is NOT thread-safe. Drive it from one goroutine.
package scene

import (
	"github.com/google/uuid"

	"github.com/milcktoast/sketchy"
)

// PathItem is a source path placed in a document.
type PathItem struct {
	ID       string
	Path     *sketchy.Path
	Selected bool
}

// Document is a retained collection of source paths and generated groups.
type Document struct {
	paths  []*PathItem
	groups []*Group
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		paths:  make([]*PathItem, 0, 8),
		groups: make([]*Group, 0, 16),
	}
}

// AddPath places p in the document and returns its item.
func (d *Document) AddPath(p *sketchy.Path, selected bool) *PathItem {
	item := &PathItem{
		ID:       uuid.NewString(),
		Path:     p,
		Selected: selected,
	}
	d.paths = append(d.paths, item)
	return item
}

// Paths returns all source path items in insertion order.
func (d *Document) Paths() []*PathItem {
	return d.paths
}

// Select sets the selection state of the path with the given id.
// It reports whether the path exists.
func (d *Document) Select(id string, selected bool) bool {
	for _, p := range d.paths {
		if p.ID == id {
			p.Selected = selected
			return true
		}
	}
	return false
}

// SelectAll sets the selection state of every source path.
func (d *Document) SelectAll(selected bool) {
	for _, p := range d.paths {
		p.Selected = selected
	}
}

// SelectedPaths returns the selected source paths in insertion order.
func (d *Document) SelectedPaths() []sketchy.Measurer {
	var sel []sketchy.Measurer
	for _, p := range d.paths {
		if p.Selected {
			sel = append(sel, p.Path)
		}
	}
	return sel
}

// NewLine creates a line primitive. It is not part of the document until
// it is grouped with NewGroup.
func (d *Document) NewLine(a, b sketchy.Point) sketchy.Primitive {
	return &Line{A: a, B: b, StrokeWidth: 1, Opacity: 1}
}

// NewGroup wraps items created by this document's NewLine into a group and
// appends it to the document. Primitives from other hosts are ignored.
func (d *Document) NewGroup(items []sketchy.Primitive) sketchy.GroupHandle {
	g := &Group{
		ID:      uuid.NewString(),
		Lines:   make([]*Line, 0, len(items)),
		Opacity: 1,
	}
	for _, it := range items {
		l, ok := it.(*Line)
		if !ok {
			sketchy.Logger().Warn("scene: ignoring foreign primitive", "type", typeName(it))
			continue
		}
		g.Lines = append(g.Lines, l)
	}
	d.groups = append(d.groups, g)
	return g
}

// Groups returns all generated groups, oldest first.
func (d *Document) Groups() []*Group {
	return d.groups
}

// Group returns the group with the given id, or nil.
func (d *Document) Group(id string) *Group {
	for _, g := range d.groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// RemoveGroup deletes the group with the given id.
// It reports whether a group was removed.
func (d *Document) RemoveGroup(id string) bool {
	for i, g := range d.groups {
		if g.ID == id {
			d.groups = append(d.groups[:i], d.groups[i+1:]...)
			return true
		}
	}
	return false
}

// MoveGroup translates every line of the group with the given id.
// It reports whether the group exists.
func (d *Document) MoveGroup(id string, dx, dy float64) bool {
	g := d.Group(id)
	if g == nil {
		return false
	}
	g.Translate(dx, dy)
	return true
}

// ClearGroups removes every generated group, keeping source paths.
func (d *Document) ClearGroups() {
	d.groups = d.groups[:0]
}

// LineCount returns the number of lines across all groups.
func (d *Document) LineCount() int {
	n := 0
	for _, g := range d.groups {
		n += len(g.Lines)
	}
	return n
}

// Bounds returns the bounding box of all source paths and generated lines.
func (d *Document) Bounds() sketchy.Rect {
	r := sketchy.EmptyRect()
	for _, p := range d.paths {
		if b := p.Path.Bounds(); !b.IsEmpty() {
			r = r.Union(b)
		}
	}
	for _, g := range d.groups {
		if b := g.Bounds(); !b.IsEmpty() {
			r = r.Union(b)
		}
	}
	return r
}
