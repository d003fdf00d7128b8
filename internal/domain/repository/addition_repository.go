package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AdditionRepository define el puerto de persistencia para entradas de stock.
// Solo inserción y lectura: las entradas son append-only.
type AdditionRepository interface {
	Create(ctx context.Context, addition *entity.Addition) error
	ListByItem(ctx context.Context, itemID string) ([]*entity.Addition, error)
	List(ctx context.Context) ([]*entity.Addition, error)
}
