package inventory

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	dominv "github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/metrics"
)

// Defaults de umbrales cuando el alta no los especifica.
const (
	DefaultMinThreshold = 15
	DefaultMaxThreshold = 50
)

// dateLayout formato de fecha de negocio para entradas y salidas.
const dateLayout = "2006-01-02"

// actorSystem atribución por defecto cuando el caller no indica quién muta.
const actorSystem = "System"

// LedgerUseCase es el motor del libro de inventario: altas y edición de ítems,
// entradas y salidas de stock. Cada operación corre como una unidad transaccional
// (fila del ítem bloqueada con SELECT FOR UPDATE) que deja el estado derivado y
// el historial de auditoría consistentes entre sí.
type LedgerUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza la fuente de tiempo (tests).
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// CreateItem da de alta un ítem. Valida requeridos y no-negativos, aplica los
// umbrales por defecto y deriva el estado inicial. No genera historial: no hay
// estado previo que auditar.
func (uc *LedgerUseCase) CreateItem(ctx context.Context, in dto.CreateItemRequest) (out *dto.ItemResponse, err error) {
	defer func() { metrics.ObserveLedgerOperation("create_item", err) }()

	if in.Name == "" || in.MeasurementUnit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	minThreshold := DefaultMinThreshold
	if in.MinThreshold != nil {
		minThreshold = *in.MinThreshold
	}
	maxThreshold := DefaultMaxThreshold
	if in.MaxThreshold != nil {
		maxThreshold = *in.MaxThreshold
	}
	if minThreshold < 0 || maxThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := uc.now()
	item := &entity.Item{
		ID:              uuid.New().String(),
		Name:            in.Name,
		MeasurementUnit: in.MeasurementUnit,
		CurrentQuantity: in.CurrentQuantity,
		MinThreshold:    minThreshold,
		MaxThreshold:    maxThreshold,
		Status:          dominv.DeriveStatus(in.CurrentQuantity, minThreshold),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		_ repository.AdditionRepository,
		_ repository.WithdrawalRepository,
		_ repository.HistoryRepository,
	) error {
		existing, err := items.GetByName(ctx, item.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return items.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// UpdateItemFields aplica cambios sobre los campos editables del ítem (name,
// measurement_unit, min_threshold, max_threshold). Solo los campos que
// realmente cambian generan entrada de historial; el estado se rederiva
// siempre porque los umbrales pudieron cambiar.
func (uc *LedgerUseCase) UpdateItemFields(ctx context.Context, itemID string, in dto.UpdateItemRequest) (out *dto.ItemResponse, err error) {
	defer func() { metrics.ObserveLedgerOperation("update_item", err) }()

	proposals, err := buildProposals(in)
	if err != nil {
		return nil, err
	}
	actor := in.UpdatedBy
	if actor == "" {
		actor = actorSystem
	}

	var updated *entity.Item
	err = uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		_ repository.AdditionRepository,
		_ repository.WithdrawalRepository,
		history repository.HistoryRepository,
	) error {
		item, err := items.GetByIDForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		changes := dominv.DiffFields(item, proposals)
		if len(changes) == 0 {
			updated = item
			return nil
		}

		for _, ch := range changes {
			if err := applyChange(item, ch); err != nil {
				return err
			}
		}
		item.Status = dominv.DeriveStatus(item.CurrentQuantity, item.MinThreshold)
		now := uc.now()
		item.UpdatedAt = now
		if err := items.Save(ctx, item); err != nil {
			return err
		}
		for _, ch := range changes {
			entry := &entity.HistoryEntry{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				FieldName: ch.Field,
				OldValue:  ch.OldValue,
				NewValue:  ch.NewValue,
				UpdatedBy: actor,
				UpdatedAt: now,
			}
			if err := history.Create(ctx, entry); err != nil {
				return err
			}
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// RecordAddition registra una entrada de stock: crea el registro inmutable,
// suma la cantidad, rederiva el estado y deja una entrada de historial para
// current_quantity atribuida a quien recibió la mercancía. Todo o nada.
func (uc *LedgerUseCase) RecordAddition(ctx context.Context, in dto.AdditionRequest) (out *dto.AdditionResponse, err error) {
	defer func() { metrics.ObserveLedgerOperation("record_addition", err) }()

	if in.QuantityAdded <= 0 || in.ReceivedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := time.Parse(dateLayout, in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var addition *entity.Addition
	err = uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		additions repository.AdditionRepository,
		_ repository.WithdrawalRepository,
		history repository.HistoryRepository,
	) error {
		item, err := items.GetByIDForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		now := uc.now()
		newQuantity := item.CurrentQuantity + in.QuantityAdded
		changes := dominv.DiffFields(item, []dominv.ProposedChange{
			{Field: "current_quantity", NewValue: strconv.Itoa(newQuantity)},
		})

		item.CurrentQuantity = newQuantity
		item.Status = dominv.DeriveStatus(item.CurrentQuantity, item.MinThreshold)
		item.UpdatedAt = now
		if err := items.Save(ctx, item); err != nil {
			return err
		}

		addition = &entity.Addition{
			ID:            uuid.New().String(),
			ItemID:        item.ID,
			QuantityAdded: in.QuantityAdded,
			PurchaseDate:  purchaseDate,
			ReceivedBy:    in.ReceivedBy,
			Notes:         in.Notes,
			CreatedAt:     now,
		}
		if err := additions.Create(ctx, addition); err != nil {
			return err
		}

		for _, ch := range changes {
			entry := &entity.HistoryEntry{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				FieldName: ch.Field,
				OldValue:  ch.OldValue,
				NewValue:  ch.NewValue,
				UpdatedBy: in.ReceivedBy,
				UpdatedAt: now,
			}
			if err := history.Create(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toAdditionResponse(addition), nil
}

// RecordWithdrawal registra una salida de stock. Si la cantidad pedida supera
// el stock actual la operación aborta con ErrInsufficientStock sin tocar nada:
// ni cantidad, ni estado, ni historial.
func (uc *LedgerUseCase) RecordWithdrawal(ctx context.Context, in dto.WithdrawalRequest) (out *dto.WithdrawalResponse, err error) {
	defer func() { metrics.ObserveLedgerOperation("record_withdrawal", err) }()

	if in.QuantityWithdrawn <= 0 || in.WithdrawnBy == "" || in.Department == "" {
		return nil, domain.ErrInvalidInput
	}
	withdrawalDate, err := time.Parse(dateLayout, in.WithdrawalDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var withdrawal *entity.Withdrawal
	err = uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		_ repository.AdditionRepository,
		withdrawals repository.WithdrawalRepository,
		history repository.HistoryRepository,
	) error {
		item, err := items.GetByIDForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if in.QuantityWithdrawn > item.CurrentQuantity {
			return domain.ErrInsufficientStock
		}

		now := uc.now()
		newQuantity := item.CurrentQuantity - in.QuantityWithdrawn
		changes := dominv.DiffFields(item, []dominv.ProposedChange{
			{Field: "current_quantity", NewValue: strconv.Itoa(newQuantity)},
		})

		item.CurrentQuantity = newQuantity
		item.Status = dominv.DeriveStatus(item.CurrentQuantity, item.MinThreshold)
		item.UpdatedAt = now
		if err := items.Save(ctx, item); err != nil {
			return err
		}

		withdrawal = &entity.Withdrawal{
			ID:                uuid.New().String(),
			ItemID:            item.ID,
			QuantityWithdrawn: in.QuantityWithdrawn,
			WithdrawalDate:    withdrawalDate,
			WithdrawnBy:       in.WithdrawnBy,
			Department:        in.Department,
			Notes:             in.Notes,
			CreatedAt:         now,
		}
		if err := withdrawals.Create(ctx, withdrawal); err != nil {
			return err
		}

		for _, ch := range changes {
			entry := &entity.HistoryEntry{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				FieldName: ch.Field,
				OldValue:  ch.OldValue,
				NewValue:  ch.NewValue,
				UpdatedBy: in.WithdrawnBy,
				UpdatedAt: now,
			}
			if err := history.Create(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toWithdrawalResponse(withdrawal), nil
}

// buildProposals transforma el request en la secuencia ordenada de cambios
// propuestos (solo campos editables). Valida antes de proponer.
func buildProposals(in dto.UpdateItemRequest) ([]dominv.ProposedChange, error) {
	proposals := make([]dominv.ProposedChange, 0, 4)
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		proposals = append(proposals, dominv.ProposedChange{Field: "name", NewValue: *in.Name})
	}
	if in.MeasurementUnit != nil {
		if *in.MeasurementUnit == "" {
			return nil, domain.ErrInvalidInput
		}
		proposals = append(proposals, dominv.ProposedChange{Field: "measurement_unit", NewValue: *in.MeasurementUnit})
	}
	if in.MinThreshold != nil {
		if *in.MinThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		proposals = append(proposals, dominv.ProposedChange{Field: "min_threshold", NewValue: strconv.Itoa(*in.MinThreshold)})
	}
	if in.MaxThreshold != nil {
		if *in.MaxThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		proposals = append(proposals, dominv.ProposedChange{Field: "max_threshold", NewValue: strconv.Itoa(*in.MaxThreshold)})
	}
	return proposals, nil
}

// applyChange escribe el valor nuevo del diff sobre el campo tipado del ítem.
func applyChange(item *entity.Item, ch dominv.FieldChange) error {
	switch ch.Field {
	case "name":
		item.Name = ch.NewValue
	case "measurement_unit":
		item.MeasurementUnit = ch.NewValue
	case "min_threshold":
		n, err := strconv.Atoi(ch.NewValue)
		if err != nil {
			return domain.ErrInvalidInput
		}
		item.MinThreshold = n
	case "max_threshold":
		n, err := strconv.Atoi(ch.NewValue)
		if err != nil {
			return domain.ErrInvalidInput
		}
		item.MaxThreshold = n
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ItemID:          item.ID,
		Name:            item.Name,
		MeasurementUnit: item.MeasurementUnit,
		CurrentQuantity: item.CurrentQuantity,
		MinThreshold:    item.MinThreshold,
		MaxThreshold:    item.MaxThreshold,
		Status:          item.Status,
		CreatedAt:       item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       item.UpdatedAt.Format(time.RFC3339),
	}
}

func toAdditionResponse(a *entity.Addition) *dto.AdditionResponse {
	return &dto.AdditionResponse{
		AdditionID:    a.ID,
		ItemID:        a.ItemID,
		QuantityAdded: a.QuantityAdded,
		PurchaseDate:  a.PurchaseDate.Format(dateLayout),
		ReceivedBy:    a.ReceivedBy,
		Notes:         a.Notes,
	}
}

func toWithdrawalResponse(w *entity.Withdrawal) *dto.WithdrawalResponse {
	return &dto.WithdrawalResponse{
		WithdrawalID:      w.ID,
		ItemID:            w.ItemID,
		QuantityWithdrawn: w.QuantityWithdrawn,
		WithdrawalDate:    w.WithdrawalDate.Format(dateLayout),
		WithdrawnBy:       w.WithdrawnBy,
		Department:        w.Department,
		Notes:             w.Notes,
	}
}
