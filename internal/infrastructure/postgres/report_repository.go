package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre el libro y los ítems.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// ListTransactions une entradas y salidas con el nombre del ítem denormalizado.
// Orden: fecha ascendente; a igual fecha, 'addition' antes que 'withdrawal'.
func (r *ReportRepo) ListTransactions(ctx context.Context, itemID string) ([]repository.TransactionResult, error) {
	query := `
		SELECT t.type, t.item_id, i.name, t.quantity, t.date, t.person, t.department, t.notes
		FROM (
			SELECT 'addition' AS type, item_id, quantity_added AS quantity,
			       purchase_date AS date, received_by AS person, '' AS department,
			       COALESCE(notes, '') AS notes, created_at
			FROM item_additions
			UNION ALL
			SELECT 'withdrawal' AS type, item_id, quantity_withdrawn AS quantity,
			       withdrawal_date AS date, withdrawn_by AS person, department,
			       COALESCE(notes, '') AS notes, created_at
			FROM item_withdrawals
		) t
		JOIN items i ON i.id = t.item_id`
	args := []any{}
	if itemID != "" {
		query += ` WHERE t.item_id = $1`
		args = append(args, itemID)
	}
	query += ` ORDER BY t.date, t.type, t.created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []repository.TransactionResult
	for rows.Next() {
		var t repository.TransactionResult
		if err := rows.Scan(&t.Type, &t.ItemID, &t.ItemName, &t.Quantity, &t.Date, &t.Person, &t.Department, &t.Notes); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListPurchaseNeeds devuelve los ítems en estado COMPRAS con la cantidad
// sugerida de pedido.
func (r *ReportRepo) ListPurchaseNeeds(ctx context.Context) ([]repository.PurchaseNeedResult, error) {
	query := `
		SELECT id, name, measurement_unit, current_quantity, min_threshold, max_threshold,
		       max_threshold - current_quantity AS needed_quantity
		FROM items
		WHERE status = 'COMPRAS'
		ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list purchase needs: %w", err)
	}
	defer rows.Close()

	var out []repository.PurchaseNeedResult
	for rows.Next() {
		var p repository.PurchaseNeedResult
		if err := rows.Scan(&p.ItemID, &p.Name, &p.MeasurementUnit, &p.CurrentQuantity, &p.MinThreshold, &p.MaxThreshold, &p.NeededQuantity); err != nil {
			return nil, fmt.Errorf("scan purchase need: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
