package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementación sobre PostgreSQL (usable con pool o tx).
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Create persiste una entrada de historial.
func (r *HistoryRepo) Create(ctx context.Context, e *entity.HistoryEntry) error {
	query := `
		INSERT INTO item_update_history (id, item_id, field_name, old_value, new_value, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ItemID, e.FieldName, e.OldValue, e.NewValue, e.UpdatedBy, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create history entry: %w", err)
	}
	return nil
}

// ListByItem devuelve el historial de un ítem en orden cronológico.
func (r *HistoryRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.HistoryEntry, error) {
	query := `
		SELECT id, item_id, field_name, old_value, new_value, updated_by, updated_at
		FROM item_update_history WHERE item_id = $1 ORDER BY updated_at, id`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var out []*entity.HistoryEntry
	for rows.Next() {
		var e entity.HistoryEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.FieldName, &e.OldValue, &e.NewValue, &e.UpdatedBy, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
