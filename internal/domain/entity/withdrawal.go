package entity

import "time"

// Withdrawal registra una salida de stock para un ítem. Inmutable después
// de creado; su creación se rechaza si dejaría la cantidad en negativo.
type Withdrawal struct {
	ID                string
	ItemID            string
	QuantityWithdrawn int // > 0
	WithdrawalDate    time.Time
	WithdrawnBy       string
	Department        string
	Notes             string
	CreatedAt         time.Time
}
