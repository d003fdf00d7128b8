// Package testutil provee implementaciones en memoria de los puertos de
// persistencia para los tests de casos de uso y handlers. El TxRunner en
// memoria emula la semántica transaccional de PostgreSQL: mutex global como
// bloqueo de fila y snapshot/restore como rollback.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MemStore estado compartido de los repos en memoria.
type MemStore struct {
	mu          sync.Mutex
	items       map[string]*entity.Item
	additions   []*entity.Addition
	withdrawals []*entity.Withdrawal
	history     []*entity.HistoryEntry
}

// NewMemStore construye un almacén vacío.
func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string]*entity.Item)}
}

// Items devuelve el repo de ítems sobre este almacén.
func (s *MemStore) Items() repository.ItemRepository { return &memItemRepo{s: s} }

// Additions devuelve el repo de entradas sobre este almacén.
func (s *MemStore) Additions() repository.AdditionRepository { return &memAdditionRepo{s: s} }

// Withdrawals devuelve el repo de salidas sobre este almacén.
func (s *MemStore) Withdrawals() repository.WithdrawalRepository { return &memWithdrawalRepo{s: s} }

// History devuelve el repo de historial sobre este almacén.
func (s *MemStore) History() repository.HistoryRepository { return &memHistoryRepo{s: s} }

// Reports devuelve el repo de reportes sobre este almacén.
func (s *MemStore) Reports() repository.ReportRepository { return &memReportRepo{s: s} }

// TxRunner devuelve un runner transaccional sobre este almacén.
func (s *MemStore) TxRunner() *MemTxRunner { return &MemTxRunner{s: s} }

// HistoryEntries devuelve una copia del historial acumulado (para asserts).
func (s *MemStore) HistoryEntries() []*entity.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// WithdrawalCount devuelve cuántas salidas se persistieron (para asserts).
func (s *MemStore) WithdrawalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.withdrawals)
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// MemTxRunner implementa inventory.TxRunner en memoria: serializa las
// transacciones con un mutex (equivalente al bloqueo de fila) y deshace todo
// el estado si fn devuelve error (equivalente al rollback).
type MemTxRunner struct {
	s *MemStore
}

type snapshot struct {
	items       map[string]*entity.Item
	additions   []*entity.Addition
	withdrawals []*entity.Withdrawal
	history     []*entity.HistoryEntry
}

// Run ejecuta fn bajo el mutex global y con rollback por snapshot.
func (r *MemTxRunner) Run(_ context.Context, fn func(
	items repository.ItemRepository,
	additions repository.AdditionRepository,
	withdrawals repository.WithdrawalRepository,
	history repository.HistoryRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.take()
	err := fn(
		&memItemRepo{s: r.s, inTx: true},
		&memAdditionRepo{s: r.s, inTx: true},
		&memWithdrawalRepo{s: r.s, inTx: true},
		&memHistoryRepo{s: r.s, inTx: true},
	)
	if err != nil {
		r.s.restore(snap)
	}
	return err
}

func (s *MemStore) take() snapshot {
	items := make(map[string]*entity.Item, len(s.items))
	for id, it := range s.items {
		cp := *it
		items[id] = &cp
	}
	return snapshot{
		items:       items,
		additions:   append([]*entity.Addition(nil), s.additions...),
		withdrawals: append([]*entity.Withdrawal(nil), s.withdrawals...),
		history:     append([]*entity.HistoryEntry(nil), s.history...),
	}
}

func (s *MemStore) restore(snap snapshot) {
	s.items = snap.items
	s.additions = snap.additions
	s.withdrawals = snap.withdrawals
	s.history = snap.history
}

// lock toma el mutex solo fuera de transacción (dentro ya lo tiene el runner).
func (s *MemStore) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ── Item repo ─────────────────────────────────────────────────────────────────

type memItemRepo struct {
	s    *MemStore
	inTx bool
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	defer r.s.lock(r.inTx)()
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	defer r.s.lock(r.inTx)()
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *memItemRepo) GetByName(_ context.Context, name string) (*entity.Item, error) {
	defer r.s.lock(r.inTx)()
	for _, it := range r.s.items {
		if it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	defer r.s.lock(r.inTx)()
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Name < out[j].Name
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memItemRepo) Save(_ context.Context, item *entity.Item) error {
	defer r.s.lock(r.inTx)()
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

// ── Addition repo ─────────────────────────────────────────────────────────────

type memAdditionRepo struct {
	s    *MemStore
	inTx bool
}

func (r *memAdditionRepo) Create(_ context.Context, a *entity.Addition) error {
	defer r.s.lock(r.inTx)()
	cp := *a
	r.s.additions = append(r.s.additions, &cp)
	return nil
}

func (r *memAdditionRepo) ListByItem(_ context.Context, itemID string) ([]*entity.Addition, error) {
	defer r.s.lock(r.inTx)()
	var out []*entity.Addition
	for _, a := range r.s.additions {
		if a.ItemID == itemID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memAdditionRepo) List(_ context.Context) ([]*entity.Addition, error) {
	defer r.s.lock(r.inTx)()
	out := make([]*entity.Addition, 0, len(r.s.additions))
	for _, a := range r.s.additions {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

// ── Withdrawal repo ───────────────────────────────────────────────────────────

type memWithdrawalRepo struct {
	s    *MemStore
	inTx bool
}

func (r *memWithdrawalRepo) Create(_ context.Context, w *entity.Withdrawal) error {
	defer r.s.lock(r.inTx)()
	cp := *w
	r.s.withdrawals = append(r.s.withdrawals, &cp)
	return nil
}

func (r *memWithdrawalRepo) ListByItem(_ context.Context, itemID string) ([]*entity.Withdrawal, error) {
	defer r.s.lock(r.inTx)()
	var out []*entity.Withdrawal
	for _, w := range r.s.withdrawals {
		if w.ItemID == itemID {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memWithdrawalRepo) List(_ context.Context) ([]*entity.Withdrawal, error) {
	defer r.s.lock(r.inTx)()
	out := make([]*entity.Withdrawal, 0, len(r.s.withdrawals))
	for _, w := range r.s.withdrawals {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

// ── History repo ──────────────────────────────────────────────────────────────

type memHistoryRepo struct {
	s    *MemStore
	inTx bool
}

func (r *memHistoryRepo) Create(_ context.Context, e *entity.HistoryEntry) error {
	defer r.s.lock(r.inTx)()
	cp := *e
	r.s.history = append(r.s.history, &cp)
	return nil
}

func (r *memHistoryRepo) ListByItem(_ context.Context, itemID string) ([]*entity.HistoryEntry, error) {
	defer r.s.lock(r.inTx)()
	var out []*entity.HistoryEntry
	for _, e := range r.s.history {
		if e.ItemID == itemID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── Report repo ───────────────────────────────────────────────────────────────

type memReportRepo struct {
	s *MemStore
}

func (r *memReportRepo) ListTransactions(_ context.Context, itemID string) ([]repository.TransactionResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []repository.TransactionResult
	for _, a := range r.s.additions {
		if itemID != "" && a.ItemID != itemID {
			continue
		}
		out = append(out, repository.TransactionResult{
			Type:     "addition",
			ItemID:   a.ItemID,
			ItemName: r.itemName(a.ItemID),
			Quantity: a.QuantityAdded,
			Date:     a.PurchaseDate,
			Person:   a.ReceivedBy,
			Notes:    a.Notes,
		})
	}
	for _, w := range r.s.withdrawals {
		if itemID != "" && w.ItemID != itemID {
			continue
		}
		out = append(out, repository.TransactionResult{
			Type:       "withdrawal",
			ItemID:     w.ItemID,
			ItemName:   r.itemName(w.ItemID),
			Quantity:   w.QuantityWithdrawn,
			Date:       w.WithdrawalDate,
			Person:     w.WithdrawnBy,
			Department: w.Department,
			Notes:      w.Notes,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (r *memReportRepo) ListPurchaseNeeds(_ context.Context) ([]repository.PurchaseNeedResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []repository.PurchaseNeedResult
	for _, it := range r.s.items {
		if it.Status != entity.StatusCompras {
			continue
		}
		out = append(out, repository.PurchaseNeedResult{
			ItemID:          it.ID,
			Name:            it.Name,
			MeasurementUnit: it.MeasurementUnit,
			CurrentQuantity: it.CurrentQuantity,
			MinThreshold:    it.MinThreshold,
			MaxThreshold:    it.MaxThreshold,
			NeededQuantity:  it.MaxThreshold - it.CurrentQuantity,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memReportRepo) itemName(itemID string) string {
	if it, ok := r.s.items[itemID]; ok {
		return it.Name
	}
	return ""
}
