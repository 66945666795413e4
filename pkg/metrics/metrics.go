// Package metrics expone los contadores Prometheus del motor de movimientos.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsTotal cuenta movimientos confirmados, por tipo.
	MovementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wareho_movements_total",
		Help: "Movimientos de inventario confirmados, por tipo.",
	}, []string{"type"})

	// MovementConflictsTotal cuenta conflictos de concurrencia optimista
	// detectados al confirmar un movimiento, por tipo.
	MovementConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wareho_movement_conflicts_total",
		Help: "Conflictos de versión al confirmar movimientos, por tipo.",
	}, []string{"type"})
)
