package reports

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReportsUseCase proyecciones de solo lectura sobre el libro y los ítems:
// transacciones unificadas, lista de compras e historial de auditoría.
// Camino independiente del motor del libro: nunca muta estado.
type ReportsUseCase struct {
	reportRepo  repository.ReportRepository
	historyRepo repository.HistoryRepository
	itemRepo    repository.ItemRepository
	exporter    TransactionsExporter
	pdf         PurchaseNeedsPDFGenerator
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(
	reportRepo repository.ReportRepository,
	historyRepo repository.HistoryRepository,
	itemRepo repository.ItemRepository,
	exporter TransactionsExporter,
	pdf PurchaseNeedsPDFGenerator,
) *ReportsUseCase {
	return &ReportsUseCase{
		reportRepo:  reportRepo,
		historyRepo: historyRepo,
		itemRepo:    itemRepo,
		exporter:    exporter,
		pdf:         pdf,
	}
}

// ListTransactions devuelve la vista unificada de entradas y salidas,
// opcionalmente filtrada por ítem. Orden: fecha ascendente, entradas primero
// a igual fecha.
func (uc *ReportsUseCase) ListTransactions(ctx context.Context, itemID string) ([]dto.TransactionDTO, error) {
	rows, err := uc.reportRepo.ListTransactions(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TransactionDTO{
			Type:       r.Type,
			ItemID:     r.ItemID,
			ItemName:   r.ItemName,
			Quantity:   r.Quantity,
			Date:       r.Date.Format(dateLayout),
			Person:     r.Person,
			Department: r.Department,
			Notes:      r.Notes,
		})
	}
	return out, nil
}

// ListPurchaseNeeds devuelve los ítems en estado COMPRAS con la cantidad
// sugerida de pedido (max_threshold - current_quantity).
func (uc *ReportsUseCase) ListPurchaseNeeds(ctx context.Context) ([]dto.PurchaseNeedDTO, error) {
	rows, err := uc.reportRepo.ListPurchaseNeeds(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseNeedDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PurchaseNeedDTO{
			ItemID:          r.ItemID,
			Name:            r.Name,
			MeasurementUnit: r.MeasurementUnit,
			CurrentQuantity: r.CurrentQuantity,
			MinThreshold:    r.MinThreshold,
			NeededQuantity:  r.NeededQuantity,
		})
	}
	return out, nil
}

// ListItemHistory devuelve el historial de cambios de un ítem, del más antiguo
// al más reciente. domain.ErrNotFound si el ítem no existe.
func (uc *ReportsUseCase) ListItemHistory(ctx context.Context, itemID string) ([]dto.HistoryEntryDTO, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.historyRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HistoryEntryDTO{
			HistoryID: e.ID,
			ItemID:    e.ItemID,
			FieldName: e.FieldName,
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			UpdatedBy: e.UpdatedBy,
			UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// ExportTransactionsXLSX genera el reporte de transacciones como Excel.
func (uc *ReportsUseCase) ExportTransactionsXLSX(ctx context.Context, itemID string) ([]byte, error) {
	rows, err := uc.ListTransactions(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.TransactionsWorkbook(rows)
}

// PurchaseNeedsPDF genera la lista de compras imprimible.
func (uc *ReportsUseCase) PurchaseNeedsPDF(ctx context.Context) ([]byte, error) {
	rows, err := uc.ListPurchaseNeeds(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePurchaseNeedsPDF(ctx, rows, time.Now())
}
