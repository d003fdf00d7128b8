package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AdditionRepository = (*AdditionRepo)(nil)

// AdditionRepo implementación sobre PostgreSQL (usable con pool o tx).
type AdditionRepo struct {
	q Querier
}

// NewAdditionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdditionRepository(q Querier) *AdditionRepo {
	return &AdditionRepo{q: q}
}

// Create persiste una entrada de stock.
func (r *AdditionRepo) Create(ctx context.Context, a *entity.Addition) error {
	query := `
		INSERT INTO item_additions (id, item_id, quantity_added, purchase_date, received_by, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ItemID, a.QuantityAdded, a.PurchaseDate, a.ReceivedBy, a.Notes, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create addition: %w", err)
	}
	return nil
}

// ListByItem devuelve las entradas de un ítem, más antiguas primero.
func (r *AdditionRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Addition, error) {
	query := `
		SELECT id, item_id, quantity_added, purchase_date, received_by, notes, created_at
		FROM item_additions WHERE item_id = $1 ORDER BY purchase_date, created_at`
	return r.list(ctx, query, itemID)
}

// List devuelve todas las entradas registradas.
func (r *AdditionRepo) List(ctx context.Context) ([]*entity.Addition, error) {
	query := `
		SELECT id, item_id, quantity_added, purchase_date, received_by, notes, created_at
		FROM item_additions ORDER BY purchase_date, created_at`
	return r.list(ctx, query)
}

func (r *AdditionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Addition, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list additions: %w", err)
	}
	defer rows.Close()

	var out []*entity.Addition
	for rows.Next() {
		var a entity.Addition
		if err := rows.Scan(&a.ID, &a.ItemID, &a.QuantityAdded, &a.PurchaseDate, &a.ReceivedBy, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan addition: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
