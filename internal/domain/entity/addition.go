package entity

import "time"

// Addition registra una entrada de stock para un ítem. Es un registro
// inmutable: nunca se actualiza ni se borra después de creado.
type Addition struct {
	ID            string
	ItemID        string
	QuantityAdded int // > 0
	PurchaseDate  time.Time
	ReceivedBy    string
	Notes         string
	CreatedAt     time.Time
}
