package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// HistoryRepository define el puerto de persistencia para el historial de
// cambios a nivel de campo. Las entradas nunca se modifican después de creadas.
type HistoryRepository interface {
	Create(ctx context.Context, entry *entity.HistoryEntry) error
	ListByItem(ctx context.Context, itemID string) ([]*entity.HistoryEntry, error)
}
