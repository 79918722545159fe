// Package metrics expone contadores Prometheus del libro de movimientos.
// El endpoint /metrics se registra en cmd/api cuando METRICS_ENABLED=true.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	movementsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_movements_recorded_total",
		Help: "Movimientos de inventario registrados, por tipo.",
	}, []string{"type"})

	movementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_movements_rejected_total",
		Help: "Movimientos de inventario rechazados, por tipo y motivo.",
	}, []string{"type", "reason"})
)

// MovementRecorded incrementa el contador de movimientos registrados.
func MovementRecorded(movType string) {
	movementsRecorded.WithLabelValues(movType).Inc()
}

// MovementRejected incrementa el contador de rechazos.
// reason: validation | insufficient_stock | not_found | internal.
func MovementRejected(movType, reason string) {
	movementsRejected.WithLabelValues(movType, reason).Inc()
}
