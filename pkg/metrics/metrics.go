package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerOperations cuenta las operaciones del libro de inventario por tipo y
// resultado. Se expone en /metrics.
var LedgerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "almacen",
	Subsystem: "ledger",
	Name:      "operations_total",
	Help:      "Operaciones del libro de inventario por tipo y resultado.",
}, []string{"operation", "result"})

// ObserveLedgerOperation registra el resultado de una operación.
func ObserveLedgerOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	LedgerOperations.WithLabelValues(operation, result).Inc()
}
