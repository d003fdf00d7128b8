package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/reports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/testutil"
)

type fakeExporter struct {
	rows []dto.TransactionDTO
}

func (f *fakeExporter) TransactionsWorkbook(rows []dto.TransactionDTO) ([]byte, error) {
	f.rows = rows
	return []byte("xlsx"), nil
}

type fakePDF struct {
	rows []dto.PurchaseNeedDTO
}

func (f *fakePDF) GeneratePurchaseNeedsPDF(_ context.Context, rows []dto.PurchaseNeedDTO, _ time.Time) ([]byte, error) {
	f.rows = rows
	return []byte("pdf"), nil
}

type fixture struct {
	store    *testutil.MemStore
	ledger   *appinv.LedgerUseCase
	reports  *reports.ReportsUseCase
	exporter *fakeExporter
	pdf      *fakePDF
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := testutil.NewMemStore()
	exporter := &fakeExporter{}
	pdf := &fakePDF{}
	return &fixture{
		store:    store,
		ledger:   appinv.NewLedgerUseCase(store.TxRunner()),
		reports:  reports.NewReportsUseCase(store.Reports(), store.History(), store.Items(), exporter, pdf),
		exporter: exporter,
		pdf:      pdf,
	}
}

func (f *fixture) createItem(t *testing.T, name string, qty int) string {
	t.Helper()
	item, err := f.ledger.CreateItem(context.Background(), dto.CreateItemRequest{
		Name:            name,
		MeasurementUnit: "unidad",
		CurrentQuantity: qty,
	})
	require.NoError(t, err)
	return item.ItemID
}

func TestListTransactionsOrdenaPorFecha(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	itemID := f.createItem(t, "Cables", 100)

	_, err := f.ledger.RecordWithdrawal(ctx, dto.WithdrawalRequest{
		ItemID: itemID, QuantityWithdrawn: 4, WithdrawalDate: "2025-03-12",
		WithdrawnBy: "Bob", Department: "Redes",
	})
	require.NoError(t, err)
	_, err = f.ledger.RecordAddition(ctx, dto.AdditionRequest{
		ItemID: itemID, QuantityAdded: 30, PurchaseDate: "2025-03-10", ReceivedBy: "Alice",
	})
	require.NoError(t, err)
	// Misma fecha que la salida: la entrada va primero.
	_, err = f.ledger.RecordAddition(ctx, dto.AdditionRequest{
		ItemID: itemID, QuantityAdded: 5, PurchaseDate: "2025-03-12", ReceivedBy: "Alice",
	})
	require.NoError(t, err)

	rows, err := f.reports.ListTransactions(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "addition", rows[0].Type)
	assert.Equal(t, "2025-03-10", rows[0].Date)
	assert.Equal(t, "addition", rows[1].Type)
	assert.Equal(t, "2025-03-12", rows[1].Date)
	assert.Equal(t, "withdrawal", rows[2].Type)
	assert.Equal(t, "2025-03-12", rows[2].Date)
	assert.Equal(t, "Cables", rows[2].ItemName)
	assert.Equal(t, "Redes", rows[2].Department)
}

func TestListTransactionsFiltraPorItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cables := f.createItem(t, "Cables", 10)
	tubos := f.createItem(t, "Tubos", 10)

	for _, id := range []string{cables, tubos} {
		_, err := f.ledger.RecordAddition(ctx, dto.AdditionRequest{
			ItemID: id, QuantityAdded: 3, PurchaseDate: "2025-03-10", ReceivedBy: "Alice",
		})
		require.NoError(t, err)
	}

	rows, err := f.reports.ListTransactions(ctx, cables)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, cables, rows[0].ItemID)
}

func TestListPurchaseNeedsCalculaCantidadSugerida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// qty 10 <= min 15: COMPRAS, necesita 50-10 = 40.
	f.createItem(t, "Alcohol", 10)
	// qty 40 > min 15: SUFFICIENT, fuera del reporte.
	f.createItem(t, "Papel", 40)

	rows, err := f.reports.ListPurchaseNeeds(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alcohol", rows[0].Name)
	assert.Equal(t, 10, rows[0].CurrentQuantity)
	assert.Equal(t, 40, rows[0].NeededQuantity)
}

func TestListItemHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	itemID := f.createItem(t, "Alcohol", 20)

	_, err := f.ledger.RecordWithdrawal(ctx, dto.WithdrawalRequest{
		ItemID: itemID, QuantityWithdrawn: 10, WithdrawalDate: "2025-03-10",
		WithdrawnBy: "Bob", Department: "Aseo",
	})
	require.NoError(t, err)

	entries, err := f.reports.ListItemHistory(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "current_quantity", entries[0].FieldName)
	assert.Equal(t, "20", entries[0].OldValue)
	assert.Equal(t, "10", entries[0].NewValue)
	assert.Equal(t, "Bob", entries[0].UpdatedBy)
}

func TestListItemHistoryItemInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.reports.ListItemHistory(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportTransactionsXLSXDelegaEnElExporter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	itemID := f.createItem(t, "Cables", 10)
	_, err := f.ledger.RecordAddition(ctx, dto.AdditionRequest{
		ItemID: itemID, QuantityAdded: 3, PurchaseDate: "2025-03-10", ReceivedBy: "Alice",
	})
	require.NoError(t, err)

	data, err := f.reports.ExportTransactionsXLSX(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Len(t, f.exporter.rows, 1)
}

func TestPurchaseNeedsPDFDelegaEnElGenerador(t *testing.T) {
	f := newFixture(t)
	f.createItem(t, "Alcohol", 5)

	data, err := f.reports.PurchaseNeedsPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), data)
	require.Len(t, f.pdf.rows, 1)
	assert.Equal(t, 45, f.pdf.rows[0].NeededQuantity)
}
