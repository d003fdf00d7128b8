package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/testutil"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

// newItemReader lecturas contra el mismo almacén en memoria.
func newItemReader(store *testutil.MemStore) *usecase.ItemUseCase {
	return usecase.NewItemUseCase(store.Items())
}

func newLedger(t *testing.T) (*appinv.LedgerUseCase, *testutil.MemStore) {
	t.Helper()
	store := testutil.NewMemStore()
	fixed := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := appinv.NewLedgerUseCase(store.TxRunner()).WithClock(func() time.Time { return fixed })
	return uc, store
}

func mustCreate(t *testing.T, uc *appinv.LedgerUseCase, req dto.CreateItemRequest) *dto.ItemResponse {
	t.Helper()
	item, err := uc.CreateItem(context.Background(), req)
	require.NoError(t, err)
	return item
}

// ── CreateItem ────────────────────────────────────────────────────────────────

func TestCreateItemAplicaDefaultsYDerivaEstado(t *testing.T) {
	uc, store := newLedger(t)

	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name:            "Guantes",
		MeasurementUnit: "par",
		CurrentQuantity: 20,
	})

	assert.NotEmpty(t, item.ItemID)
	assert.Equal(t, 15, item.MinThreshold)
	assert.Equal(t, 50, item.MaxThreshold)
	assert.Equal(t, entity.StatusSufficient, item.Status)

	// El alta no tiene estado previo: cero entradas de historial.
	assert.Empty(t, store.HistoryEntries())
}

func TestCreateItemEnElUmbralNaceEnCompras(t *testing.T) {
	uc, _ := newLedger(t)

	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name:            "Cinta",
		MeasurementUnit: "rollo",
		CurrentQuantity: 15,
	})
	assert.Equal(t, entity.StatusCompras, item.Status)
}

func TestCreateItemValidaEntrada(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	cases := []dto.CreateItemRequest{
		{Name: "", MeasurementUnit: "unidad", CurrentQuantity: 1},
		{Name: "Algo", MeasurementUnit: "", CurrentQuantity: 1},
		{Name: "Algo", MeasurementUnit: "unidad", CurrentQuantity: -1},
		{Name: "Algo", MeasurementUnit: "unidad", CurrentQuantity: 1, MinThreshold: intPtr(-1)},
		{Name: "Algo", MeasurementUnit: "unidad", CurrentQuantity: 1, MaxThreshold: intPtr(-5)},
	}
	for _, req := range cases {
		_, err := uc.CreateItem(ctx, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateItemNombreDuplicado(t *testing.T) {
	uc, _ := newLedger(t)

	mustCreate(t, uc, dto.CreateItemRequest{Name: "Guantes", MeasurementUnit: "par", CurrentQuantity: 5})
	_, err := uc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name: "Guantes", MeasurementUnit: "caja", CurrentQuantity: 9,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ── UpdateItemFields ──────────────────────────────────────────────────────────

func TestUpdateItemFieldsGeneraHistorialSoloDeCambios(t *testing.T) {
	uc, store := newLedger(t)
	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Guantes", MeasurementUnit: "par", CurrentQuantity: 20,
	})

	updated, err := uc.UpdateItemFields(context.Background(), item.ItemID, dto.UpdateItemRequest{
		Name:         strPtr("Guantes"), // mismo valor, no audita
		MinThreshold: intPtr(25),
		MaxThreshold: intPtr(80),
		UpdatedBy:    "Carlos",
	})
	require.NoError(t, err)

	// min ahora 25 >= cantidad 20: el estado se rederiva.
	assert.Equal(t, 25, updated.MinThreshold)
	assert.Equal(t, 80, updated.MaxThreshold)
	assert.Equal(t, entity.StatusCompras, updated.Status)

	entries := store.HistoryEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "min_threshold", entries[0].FieldName)
	assert.Equal(t, "15", entries[0].OldValue)
	assert.Equal(t, "25", entries[0].NewValue)
	assert.Equal(t, "Carlos", entries[0].UpdatedBy)
	assert.Equal(t, "max_threshold", entries[1].FieldName)
}

func TestUpdateItemFieldsSinCambiosNoEscribeNada(t *testing.T) {
	uc, store := newLedger(t)
	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Guantes", MeasurementUnit: "par", CurrentQuantity: 20,
	})

	updated, err := uc.UpdateItemFields(context.Background(), item.ItemID, dto.UpdateItemRequest{
		Name:         strPtr("Guantes"),
		MinThreshold: intPtr(15),
	})
	require.NoError(t, err)
	assert.Equal(t, item.UpdatedAt, updated.UpdatedAt)
	assert.Empty(t, store.HistoryEntries())
}

func TestUpdateItemFieldsActorPorDefecto(t *testing.T) {
	uc, store := newLedger(t)
	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Guantes", MeasurementUnit: "par", CurrentQuantity: 20,
	})

	_, err := uc.UpdateItemFields(context.Background(), item.ItemID, dto.UpdateItemRequest{
		Name: strPtr("Guantes de nitrilo"),
	})
	require.NoError(t, err)

	entries := store.HistoryEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "System", entries[0].UpdatedBy)
}

func TestUpdateItemFieldsItemInexistente(t *testing.T) {
	uc, _ := newLedger(t)
	_, err := uc.UpdateItemFields(context.Background(), "no-existe", dto.UpdateItemRequest{
		Name: strPtr("Otro"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItemFieldsValidaEntrada(t *testing.T) {
	uc, _ := newLedger(t)
	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Guantes", MeasurementUnit: "par", CurrentQuantity: 20,
	})
	ctx := context.Background()

	_, err := uc.UpdateItemFields(ctx, item.ItemID, dto.UpdateItemRequest{Name: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.UpdateItemFields(ctx, item.ItemID, dto.UpdateItemRequest{MinThreshold: intPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── RecordAddition / RecordWithdrawal ─────────────────────────────────────────

// Escenario completo del libro: alta en 20 (SUFFICIENT), salida de 10 deja 10
// y cae a COMPRAS, entrada de 50 deja 60 y vuelve a SUFFICIENT. Cada mutación
// de cantidad queda auditada con su actor.
func TestLedgerEscenarioCompleto(t *testing.T) {
	uc, store := newLedger(t)
	ctx := context.Background()

	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Alcohol", MeasurementUnit: "litro", CurrentQuantity: 20,
	})
	require.Equal(t, entity.StatusSufficient, item.Status)

	w, err := uc.RecordWithdrawal(ctx, dto.WithdrawalRequest{
		ItemID:            item.ItemID,
		QuantityWithdrawn: 10,
		WithdrawalDate:    "2025-03-10",
		WithdrawnBy:       "Bob",
		Department:        "Mantenimiento",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", w.WithdrawalDate)

	itemUC := newItemReader(store)
	got, err := itemUC.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.CurrentQuantity)
	assert.Equal(t, entity.StatusCompras, got.Status)

	a, err := uc.RecordAddition(ctx, dto.AdditionRequest{
		ItemID:        item.ItemID,
		QuantityAdded: 50,
		PurchaseDate:  "2025-03-11",
		ReceivedBy:    "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, a.QuantityAdded)

	got, err = itemUC.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 60, got.CurrentQuantity)
	assert.Equal(t, entity.StatusSufficient, got.Status)

	entries := store.HistoryEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "current_quantity", entries[0].FieldName)
	assert.Equal(t, "20", entries[0].OldValue)
	assert.Equal(t, "10", entries[0].NewValue)
	assert.Equal(t, "Bob", entries[0].UpdatedBy)
	assert.Equal(t, "current_quantity", entries[1].FieldName)
	assert.Equal(t, "10", entries[1].OldValue)
	assert.Equal(t, "60", entries[1].NewValue)
	assert.Equal(t, "Alice", entries[1].UpdatedBy)
}

func TestRecordWithdrawalStockInsuficienteNoTocaNada(t *testing.T) {
	uc, store := newLedger(t)
	ctx := context.Background()

	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Alcohol", MeasurementUnit: "litro", CurrentQuantity: 5,
	})

	_, err := uc.RecordWithdrawal(ctx, dto.WithdrawalRequest{
		ItemID:            item.ItemID,
		QuantityWithdrawn: 10,
		WithdrawalDate:    "2025-03-10",
		WithdrawnBy:       "Bob",
		Department:        "Mantenimiento",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Todo o nada: ni cantidad, ni registro de salida, ni historial.
	got, err := newItemReader(store).GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.CurrentQuantity)
	assert.Zero(t, store.WithdrawalCount())
	assert.Empty(t, store.HistoryEntries())
}

func TestRecordWithdrawalRetiroExactoDejaCero(t *testing.T) {
	uc, store := newLedger(t)
	ctx := context.Background()

	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Alcohol", MeasurementUnit: "litro", CurrentQuantity: 5,
	})

	_, err := uc.RecordWithdrawal(ctx, dto.WithdrawalRequest{
		ItemID:            item.ItemID,
		QuantityWithdrawn: 5,
		WithdrawalDate:    "2025-03-10",
		WithdrawnBy:       "Bob",
		Department:        "Mantenimiento",
	})
	require.NoError(t, err)

	got, err := newItemReader(store).GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentQuantity)
	assert.Equal(t, entity.StatusCompras, got.Status)
}

func TestRecordAdditionValidaEntrada(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	cases := []dto.AdditionRequest{
		{ItemID: "x", QuantityAdded: 0, PurchaseDate: "2025-03-10", ReceivedBy: "Alice"},
		{ItemID: "x", QuantityAdded: -3, PurchaseDate: "2025-03-10", ReceivedBy: "Alice"},
		{ItemID: "x", QuantityAdded: 5, PurchaseDate: "2025-03-10", ReceivedBy: ""},
		{ItemID: "x", QuantityAdded: 5, PurchaseDate: "10/03/2025", ReceivedBy: "Alice"},
	}
	for _, req := range cases {
		_, err := uc.RecordAddition(ctx, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := uc.RecordAddition(ctx, dto.AdditionRequest{
		ItemID: "no-existe", QuantityAdded: 5, PurchaseDate: "2025-03-10", ReceivedBy: "Alice",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordWithdrawalValidaEntrada(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	cases := []dto.WithdrawalRequest{
		{ItemID: "x", QuantityWithdrawn: 0, WithdrawalDate: "2025-03-10", WithdrawnBy: "Bob", Department: "Mantenimiento"},
		{ItemID: "x", QuantityWithdrawn: 5, WithdrawalDate: "2025-03-10", WithdrawnBy: "", Department: "Mantenimiento"},
		{ItemID: "x", QuantityWithdrawn: 5, WithdrawalDate: "2025-03-10", WithdrawnBy: "Bob", Department: ""},
		{ItemID: "x", QuantityWithdrawn: 5, WithdrawalDate: "ayer", WithdrawnBy: "Bob", Department: "Mantenimiento"},
	}
	for _, req := range cases {
		_, err := uc.RecordWithdrawal(ctx, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Dos salidas que juntas exceden el stock: exactamente una gana la fila y la
// otra aborta con stock insuficiente, aunque corran en paralelo.
func TestRecordWithdrawalConcurrenteSoloUnaGana(t *testing.T) {
	uc, store := newLedger(t)
	ctx := context.Background()

	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Alcohol", MeasurementUnit: "litro", CurrentQuantity: 20,
	})

	quantities := []int{15, 10}
	errs := make([]error, len(quantities))
	var wg sync.WaitGroup
	for i, q := range quantities {
		wg.Add(1)
		go func(i, q int) {
			defer wg.Done()
			_, errs[i] = uc.RecordWithdrawal(ctx, dto.WithdrawalRequest{
				ItemID:            item.ItemID,
				QuantityWithdrawn: q,
				WithdrawalDate:    "2025-03-10",
				WithdrawnBy:       "Bob",
				Department:        "Mantenimiento",
			})
		}(i, q)
	}
	wg.Wait()

	var okCount, insufficientCount int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficientCount++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 1, insufficientCount)
	assert.Equal(t, 1, store.WithdrawalCount())

	// La cantidad final es consistente con la única salida aplicada.
	got, err := newItemReader(store).GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.CurrentQuantity, 0)
	assert.Contains(t, []int{5, 10}, got.CurrentQuantity)
}

// La suma de entradas menos salidas siempre reproduce la cantidad actual.
func TestLedgerRoundTrip(t *testing.T) {
	uc, store := newLedger(t)
	ctx := context.Background()

	item := mustCreate(t, uc, dto.CreateItemRequest{
		Name: "Papel", MeasurementUnit: "resma", CurrentQuantity: 0,
	})

	added := 0
	for _, q := range []int{30, 12, 8} {
		_, err := uc.RecordAddition(ctx, dto.AdditionRequest{
			ItemID: item.ItemID, QuantityAdded: q, PurchaseDate: "2025-03-10", ReceivedBy: "Alice",
		})
		require.NoError(t, err)
		added += q
	}
	withdrawn := 0
	for _, q := range []int{7, 13} {
		_, err := uc.RecordWithdrawal(ctx, dto.WithdrawalRequest{
			ItemID: item.ItemID, QuantityWithdrawn: q, WithdrawalDate: "2025-03-11",
			WithdrawnBy: "Bob", Department: "Oficina",
		})
		require.NoError(t, err)
		withdrawn += q
	}

	got, err := newItemReader(store).GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, added-withdrawn, got.CurrentQuantity)

	// Una entrada de historial por cada mutación de cantidad.
	assert.Len(t, store.HistoryEntries(), 5)
}
