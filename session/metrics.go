package session

import "github.com/prometheus/client_golang/prometheus"

// Protocol label values.
const (
	protocolPointer = "pointer"
	protocolCross   = "cross"
	protocolSelf    = "self"
)

// Metrics counts the work done by a Session.
type Metrics struct {
	Generations    *prometheus.CounterVec
	Samples        prometheus.Counter
	CandidatePairs prometheus.Counter
	Lines          prometheus.Counter
	CacheSize      prometheus.Gauge
}

// NewMetrics creates the session collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sketchy",
			Name:      "generations_total",
			Help:      "Composed groups by protocol.",
		}, []string{"protocol"}),
		Samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sketchy",
			Name:      "samples_total",
			Help:      "Points sampled from source paths.",
		}),
		CandidatePairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sketchy",
			Name:      "candidate_pairs_total",
			Help:      "Point pairs in the connection candidate set.",
		}),
		Lines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sketchy",
			Name:      "lines_total",
			Help:      "Lines accepted by the distance band.",
		}),
		CacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sketchy",
			Name:      "point_cache_size",
			Help:      "Points currently held in the pointer cache.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Generations, m.Samples, m.CandidatePairs, m.Lines, m.CacheSize)
	}
	return m
}

func (m *Metrics) observe(protocol string, candidates, lines int) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(protocol).Inc()
	m.CandidatePairs.Add(float64(candidates))
	m.Lines.Add(float64(lines))
}

func (m *Metrics) sampled(n int) {
	if m == nil {
		return
	}
	m.Samples.Add(float64(n))
}

func (m *Metrics) cacheSize(n int) {
	if m == nil {
		return
	}
	m.CacheSize.Set(float64(n))
}
