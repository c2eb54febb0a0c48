// Package metrics holds the Prometheus collectors of the page server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pageinclude"

// Render outcomes used as the status label.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics records page rendering activity.
type Metrics struct {
	pagesRendered  *prometheus.CounterVec
	assetTags      *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

// New registers the collectors on reg.
// Panics if they are already registered there, like promauto.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		pagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_rendered_total",
			Help:      "Total number of pages rendered, by outcome",
		}, []string{"status"}),

		assetTags: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asset_tags_total",
			Help:      "Total number of include tags emitted, by asset type",
		}, []string{"type"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Page rendering duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// ObservePage records one page render. A nil receiver is a no-op.
func (m *Metrics) ObservePage(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.pagesRendered.WithLabelValues(status).Inc()
	m.renderDuration.Observe(elapsed.Seconds())
}

// AddTags records n emitted tags of the given asset type ("js" or "css").
func (m *Metrics) AddTags(assetType string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.assetTags.WithLabelValues(assetType).Add(float64(n))
}
