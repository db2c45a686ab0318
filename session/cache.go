package session

import "github.com/milcktoast/sketchy"

// PointCache accumulates pointer positions for the lifetime of a session.
//
// The cache grows until Clear is called. With a positive limit the oldest
// points are dropped once the limit is exceeded.
type PointCache struct {
	points []sketchy.Point
	limit  int
}

// NewPointCache creates an empty cache. A limit of 0 means unbounded.
func NewPointCache(limit int) *PointCache {
	return &PointCache{limit: max(limit, 0)}
}

// Add appends pt, evicting the oldest points beyond the limit.
func (c *PointCache) Add(pt sketchy.Point) {
	c.points = append(c.points, pt)
	c.trim()
}

// Points returns the cached points, oldest first. The slice is only valid
// until the next mutation of the cache.
func (c *PointCache) Points() []sketchy.Point {
	return c.points
}

// Len returns the number of cached points.
func (c *PointCache) Len() int {
	return len(c.points)
}

// Limit returns the current cap; 0 means unbounded.
func (c *PointCache) Limit() int {
	return c.limit
}

// SetLimit changes the cap and evicts immediately if needed.
func (c *PointCache) SetLimit(limit int) {
	c.limit = max(limit, 0)
	c.trim()
}

// Clear empties the cache.
func (c *PointCache) Clear() {
	c.points = c.points[:0]
}

func (c *PointCache) trim() {
	if c.limit == 0 || len(c.points) <= c.limit {
		return
	}
	n := copy(c.points, c.points[len(c.points)-c.limit:])
	c.points = c.points[:n]
}
