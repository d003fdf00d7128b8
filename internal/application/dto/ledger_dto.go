package dto

// AdditionRequest body para POST /api/additions. La fecha va como "2006-01-02".
type AdditionRequest struct {
	ItemID        string `json:"item_id"`
	QuantityAdded int    `json:"quantity_added"`
	PurchaseDate  string `json:"purchase_date"`
	ReceivedBy    string `json:"received_by"`
	Notes         string `json:"notes,omitempty"`
}

// AdditionResponse entrada de stock registrada.
type AdditionResponse struct {
	AdditionID    string `json:"addition_id"`
	ItemID        string `json:"item_id"`
	QuantityAdded int    `json:"quantity_added"`
	PurchaseDate  string `json:"purchase_date"`
	ReceivedBy    string `json:"received_by"`
	Notes         string `json:"notes,omitempty"`
}

// WithdrawalRequest body para POST /api/withdrawals. La fecha va como "2006-01-02".
type WithdrawalRequest struct {
	ItemID            string `json:"item_id"`
	QuantityWithdrawn int    `json:"quantity_withdrawn"`
	WithdrawalDate    string `json:"withdrawal_date"`
	WithdrawnBy       string `json:"withdrawn_by"`
	Department        string `json:"department"`
	Notes             string `json:"notes,omitempty"`
}

// WithdrawalResponse salida de stock registrada.
type WithdrawalResponse struct {
	WithdrawalID      string `json:"withdrawal_id"`
	ItemID            string `json:"item_id"`
	QuantityWithdrawn int    `json:"quantity_withdrawn"`
	WithdrawalDate    string `json:"withdrawal_date"`
	WithdrawnBy       string `json:"withdrawn_by"`
	Department        string `json:"department"`
	Notes             string `json:"notes,omitempty"`
}

// HistoryEntryDTO entrada del historial de cambios de un ítem.
type HistoryEntryDTO struct {
	HistoryID string `json:"history_id"`
	ItemID    string `json:"item_id"`
	FieldName string `json:"field_name"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	UpdatedBy string `json:"updated_by"`
	UpdatedAt string `json:"updated_at"`
}
