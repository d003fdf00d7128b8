package repository

import (
	"context"
	"time"
)

// TransactionResult fila de la vista unificada de transacciones: entradas y
// salidas etiquetadas por tipo, con el nombre del ítem denormalizado.
type TransactionResult struct {
	Type       string // "addition" | "withdrawal"
	ItemID     string
	ItemName   string
	Quantity   int
	Date       time.Time
	Person     string
	Department string // solo para withdrawals
	Notes      string
}

// PurchaseNeedResult fila del reporte de compras: ítems en estado COMPRAS con
// la cantidad sugerida de pedido (max_threshold - current_quantity).
type PurchaseNeedResult struct {
	ItemID          string
	Name            string
	MeasurementUnit string
	CurrentQuantity int
	MinThreshold    int
	MaxThreshold    int
	NeededQuantity  int
}

// ReportRepository consultas de solo lectura sobre el libro de movimientos y
// el estado de los ítems.
type ReportRepository interface {
	// ListTransactions devuelve entradas y salidas (opcionalmente de un solo
	// ítem) ordenadas por fecha ascendente; a igual fecha, entradas primero.
	ListTransactions(ctx context.Context, itemID string) ([]TransactionResult, error)
	ListPurchaseNeeds(ctx context.Context) ([]PurchaseNeedResult, error)
}
