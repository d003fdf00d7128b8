package entity

import "time"

// Estados posibles de un ítem según su nivel de stock.
const (
	StatusSufficient = "SUFFICIENT" // stock por encima del mínimo
	StatusCompras    = "COMPRAS"    // hay que reponer
)

// Item representa un ítem del almacén. Status es un campo derivado: se
// recalcula en cada mutación que toque CurrentQuantity o MinThreshold,
// nunca se asigna de forma independiente.
type Item struct {
	ID              string
	Name            string
	MeasurementUnit string
	CurrentQuantity int // siempre >= 0
	MinThreshold    int
	MaxThreshold    int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
