package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
)

var _ inventory.LedgerObserver = (*Metrics)(nil)

// Config etiquetas constantes de todas las series.
type Config struct {
	ServiceName string
	Environment string
}

// Metrics series Prometheus del servicio: historial de cantidades y HTTP.
type Metrics struct {
	ledgerEntries *prometheus.CounterVec
	ledgerUnits   *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New registra las series en registerer (nil = prometheus.DefaultRegisterer).
func New(registerer prometheus.Registerer, cfg Config) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "repuestos-api"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}
	constLabels := prometheus.Labels{"service": serviceName, "env": environment}

	m := &Metrics{
		ledgerEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "repuestos_ledger_entries_total",
			Help:        "Entradas confirmadas en el historial de cantidades por tipo de acción.",
			ConstLabels: constLabels,
		}, []string{"action_type"}),
		ledgerUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "repuestos_ledger_units_total",
			Help:        "Unidades agregadas o retiradas según el historial de cantidades.",
			ConstLabels: constLabels,
		}, []string{"action_type"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "repuestos_http_requests_total",
			Help:        "Peticiones HTTP por método, ruta y código de estado.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "repuestos_http_request_duration_seconds",
			Help:        "Latencia de las peticiones HTTP.",
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
	}
	for _, c := range []prometheus.Collector{m.ledgerEntries, m.ledgerUnits, m.httpRequests, m.httpDuration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// EntryAppended cuenta una entrada confirmada del historial.
func (m *Metrics) EntryAppended(e *entity.PartHistory) {
	if m == nil || e == nil {
		return
	}
	m.ledgerEntries.WithLabelValues(e.ActionType).Inc()
	delta := e.NewQuantity - e.PreviousQuantity
	if delta < 0 {
		delta = -delta
	}
	m.ledgerUnits.WithLabelValues(e.ActionType).Add(float64(delta))
}

// ObserveHTTP registra una petición. route debe ser el patrón (/api/spare-parts/:id), no la URL.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
