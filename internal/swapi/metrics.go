package swapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for upstream GraphQL traffic.
// A nil *Metrics records nothing.
type Metrics struct {
	requestDuration *prometheus.HistogramVec
	cacheRequests   *prometheus.CounterVec
}

// NewMetrics creates and registers the upstream collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swapi_request_duration_seconds",
				Help:    "Duration of GraphQL operations sent to SWAPI.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "outcome"},
		),
		cacheRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swapi_cache_requests_total",
				Help: "Upstream response cache lookups by result.",
			},
			[]string{"result"},
		),
	}

	if err := reg.Register(m.requestDuration); err != nil {
		return nil, err
	}
	if err := reg.Register(m.cacheRequests); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observeRequest(operation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(operation, outcome).Observe(d.Seconds())
}

func (m *Metrics) cacheResult(result string) {
	if m == nil {
		return
	}
	m.cacheRequests.WithLabelValues(result).Inc()
}
