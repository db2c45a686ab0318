// Package session coordinates generation requests against a host.
//
// A Session owns the pointer point cache and exposes the two generation
// protocols:
//
//   - Pointer: one-shot per pointer move/press, connecting the pointer
//     position with the sampled selection and the cached pointer points.
//   - CrossReference: one-shot per user action, connecting each selected
//     path with its cyclic neighbour and, optionally, with itself.
//
// Every generation runs to completion synchronously and is composed into
// its own group on the host; earlier output is never replaced.
//
// Thread safety: Session is NOT thread-safe. Events must be delivered in
// arrival order from a single goroutine.
package session

import (
	"errors"
	"fmt"

	"github.com/milcktoast/sketchy"
)

// Selection answers the host's "selected paths" query.
type Selection interface {
	SelectedPaths() []sketchy.Measurer
}

// Options is the parameter set of a Session.
type Options struct {
	Division   sketchy.DivisionParams
	Connection sketchy.ConnectionParams
	Style      sketchy.StyleParams

	// CachePointerInput appends every pointer position to the cache and
	// connects new positions against all cached ones.
	CachePointerInput bool

	// SelfReferential connects each selected path with itself in
	// CrossReference.
	SelfReferential bool

	// CacheLimit caps the pointer cache; 0 means unbounded.
	CacheLimit int

	// IndexThreshold is the candidate pair count above which connections
	// use a spatial index; 0 disables the index.
	IndexThreshold int
}

// DefaultOptions returns the stock parameter set.
func DefaultOptions() Options {
	return Options{
		Division: sketchy.DivisionParams{Mode: sketchy.ByLength, Amount: 10},
		Connection: sketchy.ConnectionParams{
			MinLength:      0,
			MaxLength:      100,
			MinStrokeWidth: 0.05,
			MaxStrokeWidth: 0.1,
		},
		Style:             sketchy.StyleParams{Opacity: 0.6, Scope: sketchy.PerSegment},
		CachePointerInput: true,
		SelfReferential:   true,
		IndexThreshold:    1 << 16,
	}
}

// Validate checks every parameter invariant.
func (o Options) Validate() error {
	errs := []error{
		o.Division.Validate(),
		o.Connection.Validate(),
		o.Style.Validate(),
	}
	if o.CacheLimit < 0 {
		errs = append(errs, fmt.Errorf("session: cache limit must be non-negative, got %d", o.CacheLimit))
	}
	if o.IndexThreshold < 0 {
		errs = append(errs, fmt.Errorf("session: index threshold must be non-negative, got %d", o.IndexThreshold))
	}
	return errors.Join(errs...)
}

// Option configures a Session during creation.
type Option func(*Session)

// WithMetrics records session work into m.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// Session drives generation requests against a host.
type Session struct {
	host    sketchy.Host
	sel     Selection
	opts    Options
	cache   *PointCache
	metrics *Metrics
}

// New creates a session. opts is assumed valid; see Options.Validate.
func New(host sketchy.Host, sel Selection, opts Options, options ...Option) *Session {
	s := &Session{
		host:  host,
		sel:   sel,
		opts:  opts,
		cache: NewPointCache(opts.CacheLimit),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Options returns the current parameters.
func (s *Session) Options() Options {
	return s.opts
}

// SetOptions replaces the parameters. The cache keeps its points but
// adopts the new limit.
func (s *Session) SetOptions(opts Options) {
	s.opts = opts
	s.cache.SetLimit(opts.CacheLimit)
	s.metrics.cacheSize(s.cache.Len())
}

// Cache returns the session's pointer cache.
func (s *Session) Cache() *PointCache {
	return s.cache
}

// CacheLen returns the number of cached pointer points.
func (s *Session) CacheLen() int {
	return s.cache.Len()
}

// ClearCache empties the pointer cache.
func (s *Session) ClearCache() {
	s.cache.Clear()
	s.metrics.cacheSize(0)
	sketchy.Logger().Debug("session: point cache cleared")
}

// Pointer handles one pointer move or press at pt.
//
// It returns nil without touching the host when no path is selected and
// pointer caching is off. Otherwise it connects pt with the sampled
// selection (plus the cache, which first receives pt) and returns the
// composed group.
func (s *Session) Pointer(pt sketchy.Point) sketchy.GroupHandle {
	paths := s.sel.SelectedPaths()
	if len(paths) == 0 && !s.opts.CachePointerInput {
		return nil
	}

	target := sketchy.SampleFlat(paths, s.opts.Division)
	s.metrics.sampled(len(target))

	if s.opts.CachePointerInput {
		s.cache.Add(pt)
		s.metrics.cacheSize(s.cache.Len())
		target = append(target, s.cache.Points()...)
	}

	lines := s.connect([]sketchy.Point{pt}, target, false)
	s.metrics.observe(protocolPointer, len(target), len(lines))
	sketchy.Logger().Debug("session: pointer",
		"x", pt.X, "y", pt.Y,
		"paths", len(paths),
		"targets", len(target),
		"lines", len(lines))

	return sketchy.Compose(s.host, lines, s.opts.Style)
}

// CrossReference connects the selected paths along the pairing returned by
// Pairs and returns one group per pair, in pairing order.
func (s *Session) CrossReference() []sketchy.GroupHandle {
	paths := s.sel.SelectedPaths()
	n := len(paths)
	if n == 0 {
		return nil
	}

	sets := sketchy.SampleMany(paths, s.opts.Division)
	for _, set := range sets {
		s.metrics.sampled(len(set))
	}

	pairs := Pairs(n, s.opts.SelfReferential)
	groups := make([]sketchy.GroupHandle, 0, len(pairs))
	for _, p := range pairs {
		a, b := sets[p.A], sets[p.B]
		lines := s.connect(a, b, p.Self)

		protocol, candidates := protocolCross, len(a)*len(b)
		if p.Self {
			protocol, candidates = protocolSelf, len(a)*(len(a)-1)/2
		}
		s.metrics.observe(protocol, candidates, len(lines))
		sketchy.Logger().Debug("session: cross reference",
			"a", p.A, "b", p.B, "self", p.Self,
			"lines", len(lines))

		groups = append(groups, sketchy.Compose(s.host, lines, s.opts.Style))
	}
	return groups
}

func (s *Session) connect(a, b []sketchy.Point, self bool) []sketchy.LineDescriptor {
	if t := s.opts.IndexThreshold; t > 0 && len(a)*len(b) > t {
		return sketchy.ConnectIndexed(a, b, self, s.opts.Connection)
	}
	return sketchy.Connect(a, b, self, s.opts.Connection)
}
