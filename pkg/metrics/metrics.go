// Package metrics define los colectores Prometheus del servicio: tráfico HTTP
// y resultado de las corridas de sincronización.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// HTTPRequests peticiones atendidas, por método, ruta y código de estado.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnover_http_requests_total",
			Help: "Total de peticiones HTTP atendidas",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration latencia de las peticiones, por método y ruta.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "turnover_http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SyncRuns corridas de sincronización terminadas, por tipo y estado final.
	SyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnover_sync_runs_total",
			Help: "Total de corridas de sincronización terminadas",
		},
		[]string{"sync_type", "status"},
	)

	// RecordsSynced registros escritos por corridas terminadas, por tipo.
	RecordsSynced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "turnover_sync_records_total",
			Help: "Total de registros sincronizados",
		},
		[]string{"sync_type"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, SyncRuns, RecordsSynced)
}
