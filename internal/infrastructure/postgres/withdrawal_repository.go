package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.WithdrawalRepository = (*WithdrawalRepo)(nil)

// WithdrawalRepo implementación sobre PostgreSQL (usable con pool o tx).
type WithdrawalRepo struct {
	q Querier
}

// NewWithdrawalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWithdrawalRepository(q Querier) *WithdrawalRepo {
	return &WithdrawalRepo{q: q}
}

// Create persiste una salida de stock.
func (r *WithdrawalRepo) Create(ctx context.Context, w *entity.Withdrawal) error {
	query := `
		INSERT INTO item_withdrawals (id, item_id, quantity_withdrawn, withdrawal_date, withdrawn_by, department, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		w.ID, w.ItemID, w.QuantityWithdrawn, w.WithdrawalDate, w.WithdrawnBy, w.Department, w.Notes, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create withdrawal: %w", err)
	}
	return nil
}

// ListByItem devuelve las salidas de un ítem, más antiguas primero.
func (r *WithdrawalRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Withdrawal, error) {
	query := `
		SELECT id, item_id, quantity_withdrawn, withdrawal_date, withdrawn_by, department, notes, created_at
		FROM item_withdrawals WHERE item_id = $1 ORDER BY withdrawal_date, created_at`
	return r.list(ctx, query, itemID)
}

// List devuelve todas las salidas registradas.
func (r *WithdrawalRepo) List(ctx context.Context) ([]*entity.Withdrawal, error) {
	query := `
		SELECT id, item_id, quantity_withdrawn, withdrawal_date, withdrawn_by, department, notes, created_at
		FROM item_withdrawals ORDER BY withdrawal_date, created_at`
	return r.list(ctx, query)
}

func (r *WithdrawalRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Withdrawal, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var out []*entity.Withdrawal
	for rows.Next() {
		var w entity.Withdrawal
		if err := rows.Scan(&w.ID, &w.ItemID, &w.QuantityWithdrawn, &w.WithdrawalDate, &w.WithdrawnBy, &w.Department, &w.Notes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		out = append(out, &w)
	}
	return out, rows.Err()
}
