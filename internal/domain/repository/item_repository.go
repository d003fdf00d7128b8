package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los métodos devuelven (nil, nil) cuando el ítem no existe; la traducción a
// error de dominio la hace el caso de uso.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	// GetByIDForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usar dentro de una transacción para mutaciones de cantidad/estado.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Item, error)
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	List(ctx context.Context) ([]*entity.Item, error)
	Save(ctx context.Context, item *entity.Item) error
}
