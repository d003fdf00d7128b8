package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor del libro:
// o se persisten todos los registros de la operación o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		additions repository.AdditionRepository,
		withdrawals repository.WithdrawalRepository,
		history repository.HistoryRepository,
	) error) error
}
