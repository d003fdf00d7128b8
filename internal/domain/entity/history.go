package entity

import "time"

// HistoryEntry es un registro de auditoría a nivel de campo: valor anterior
// y nuevo (como texto) de un atributo del ítem. Append-only: una entrada por
// campo efectivamente cambiado por operación.
type HistoryEntry struct {
	ID        string
	ItemID    string
	FieldName string
	OldValue  string
	NewValue  string
	UpdatedBy string
	UpdatedAt time.Time
}
