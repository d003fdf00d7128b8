package dto

// CreateItemRequest body para POST /api/items. MinThreshold y MaxThreshold
// son opcionales; si no vienen se aplican los defaults (15 y 50).
type CreateItemRequest struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	CurrentQuantity int    `json:"current_quantity"`
	MinThreshold    *int   `json:"min_threshold,omitempty"`
	MaxThreshold    *int   `json:"max_threshold,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/{id}. Solo los campos presentes
// se comparan y aplican; UpdatedBy atribuye el cambio en el historial
// ("System" si viene vacío).
type UpdateItemRequest struct {
	Name            *string `json:"name,omitempty"`
	MeasurementUnit *string `json:"measurement_unit,omitempty"`
	MinThreshold    *int    `json:"min_threshold,omitempty"`
	MaxThreshold    *int    `json:"max_threshold,omitempty"`
	UpdatedBy       string  `json:"updated_by,omitempty"`
}

// ItemResponse representación de un ítem en respuestas.
type ItemResponse struct {
	ItemID          string `json:"item_id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	CurrentQuantity int    `json:"current_quantity"`
	MinThreshold    int    `json:"min_threshold"`
	MaxThreshold    int    `json:"max_threshold"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
