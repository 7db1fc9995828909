package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/sourcefeed/svc/visit"
)

// Metrics records request outcomes. A nil *Metrics records nothing.
type Metrics struct {
	visits      *prometheus.CounterVec
	feedItems   *prometheus.HistogramVec
	storeErrors *prometheus.CounterVec
	linkChoices *prometheus.CounterVec
}

// NewMetrics registers the module collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		visits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourcefeed",
			Name:      "visits_total",
			Help:      "Feed and welcome requests by visit state.",
		}, []string{"state"}),
		feedItems: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sourcefeed",
			Name:      "feed_items",
			Help:      "Number of items served per feed response.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}, []string{"mode"}),
		storeErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourcefeed",
			Name:      "store_errors_total",
			Help:      "Store failures surfaced to handlers.",
		}, []string{"store"}),
		linkChoices: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sourcefeed",
			Name:      "link_preference_total",
			Help:      "Link preference updates by how the value was chosen.",
		}, []string{"source"}),
	}
}

func (m *Metrics) visit(state visit.State) {
	if m != nil {
		m.visits.WithLabelValues(state.String()).Inc()
	}
}

func (m *Metrics) served(mode string, n int) {
	if m != nil {
		m.feedItems.WithLabelValues(mode).Observe(float64(n))
	}
}

func (m *Metrics) storeError(store string) {
	if m != nil {
		m.storeErrors.WithLabelValues(store).Inc()
	}
}

func (m *Metrics) linkChoice(explicit bool) {
	if m == nil {
		return
	}
	source := "random"
	if explicit {
		source = "explicit"
	}
	m.linkChoices.WithLabelValues(source).Inc()
}
