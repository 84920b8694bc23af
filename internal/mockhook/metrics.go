package mockhook

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics uses a per-server registry so several servers can coexist in one
// process.
type metrics struct {
	registry   *prometheus.Registry
	responses  *prometheus.CounterVec
	registered prometheus.Gauge
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		responses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_mockhook_responses_total",
			Help: "Webhook responses by HTTP status code",
		}, []string{"status"}),
		registered: factory.NewGauge(prometheus.GaugeOpts{
			Name: "signup_mockhook_registered_users",
			Help: "Distinct emails accepted since start",
		}),
	}
}

func (m *metrics) observeResponse(status int) {
	m.responses.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (m *metrics) setRegistered(count int) {
	m.registered.Set(float64(count))
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
