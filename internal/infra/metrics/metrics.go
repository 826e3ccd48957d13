// Package metrics exposes Prometheus counters for the service's business
// operations, served on /metrics by the HTTP delivery.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters incremented by the use case layer.
type Metrics struct {
	registry *prometheus.Registry

	Registrations   prometheus.Counter
	Logins          *prometheus.CounterVec
	BookingsCreated prometheus.Counter
	InvoicesServed  prometheus.Counter
}

// New builds the metric set on a private registry so tests can create
// independent instances without duplicate-registration panics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		Registrations: factory.NewCounter(prometheus.CounterOpts{
			Name: "railbook_registrations_total",
			Help: "Number of successfully registered accounts.",
		}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "railbook_logins_total",
			Help: "Number of login attempts by outcome.",
		}, []string{"outcome"}),
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "railbook_bookings_created_total",
			Help: "Number of bookings committed together with their payment.",
		}),
		InvoicesServed: factory.NewCounter(prometheus.CounterOpts{
			Name: "railbook_invoices_served_total",
			Help: "Number of invoice PDFs rendered and served.",
		}),
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
