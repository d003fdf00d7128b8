package dto

// TransactionDTO fila de la vista unificada de entradas y salidas.
type TransactionDTO struct {
	Type       string `json:"type"` // addition | withdrawal
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	Date       string `json:"date"`
	Person     string `json:"person"`
	Department string `json:"department,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// PurchaseNeedDTO ítem en estado COMPRAS con la cantidad sugerida de pedido.
type PurchaseNeedDTO struct {
	ItemID          string `json:"item_id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	CurrentQuantity int    `json:"current_quantity"`
	MinThreshold    int    `json:"min_threshold"`
	NeededQuantity  int    `json:"needed_quantity"`
}
