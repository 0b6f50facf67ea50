package headcontrol

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics a HeaderControl records.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "headcontrol").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use. A nil Registry creates
	// metrics without registering them anywhere.
	Registry prometheus.Registerer
}

// Metrics are the Prometheus metrics recorded while rendering. A nil
// *Metrics records nothing.
type Metrics struct {
	rendersTotal *prometheus.CounterVec
	renderErrors prometheus.Counter
}

// NewMetrics creates and registers the metrics described by config. The same
// *Metrics should be shared by every HeaderControl, registering twice in the
// same registry panics.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "headcontrol"
	}
	factory := promauto.With(config.Registry)
	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of document heads rendered, by doctype and negotiated content type",
			ConstLabels: config.ConstLabels,
		}, []string{"doctype", "content_type"}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of document heads that failed to render",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) observeRender(docType DocType, contentType ContentType) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(string(docType), string(contentType)).Inc()
}

func (m *Metrics) observeError() {
	if m == nil {
		return
	}
	m.renderErrors.Inc()
}
