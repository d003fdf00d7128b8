package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// WithdrawalRepository define el puerto de persistencia para salidas de stock.
// Append-only, igual que AdditionRepository.
type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *entity.Withdrawal) error
	ListByItem(ctx context.Context, itemID string) ([]*entity.Withdrawal, error)
	List(ctx context.Context) ([]*entity.Withdrawal, error)
}
