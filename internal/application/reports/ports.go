package reports

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// TransactionsExporter genera el libro de transacciones como archivo Excel.
type TransactionsExporter interface {
	TransactionsWorkbook(rows []dto.TransactionDTO) ([]byte, error)
}

// PurchaseNeedsPDFGenerator genera la lista de compras imprimible.
type PurchaseNeedsPDFGenerator interface {
	GeneratePurchaseNeedsPDF(ctx context.Context, rows []dto.PurchaseNeedDTO, generatedAt time.Time) ([]byte, error)
}
