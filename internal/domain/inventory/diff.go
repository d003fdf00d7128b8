package inventory

import (
	"strconv"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProposedChange es un cambio propuesto sobre un atributo del ítem, con el
// valor nuevo en su representación textual.
type ProposedChange struct {
	Field    string
	NewValue string
}

// FieldChange es el resultado del diff: campo, valor anterior y valor nuevo.
// Es la única fuente de la que se generan entradas de historial.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// DiffFields compara los cambios propuestos contra el estado actual del ítem
// y emite un FieldChange por cada campo que realmente cambia (comparación por
// representación textual). Campos desconocidos o sin cambio no emiten nada.
// El orden de salida respeta el orden en que se propusieron los cambios.
func DiffFields(item *entity.Item, changes []ProposedChange) []FieldChange {
	out := make([]FieldChange, 0, len(changes))
	for _, ch := range changes {
		current, ok := fieldValue(item, ch.Field)
		if !ok || current == ch.NewValue {
			continue
		}
		out = append(out, FieldChange{
			Field:    ch.Field,
			OldValue: current,
			NewValue: ch.NewValue,
		})
	}
	return out
}

// fieldValue devuelve la representación textual del atributo pedido.
func fieldValue(item *entity.Item, field string) (string, bool) {
	switch field {
	case "name":
		return item.Name, true
	case "measurement_unit":
		return item.MeasurementUnit, true
	case "current_quantity":
		return strconv.Itoa(item.CurrentQuantity), true
	case "min_threshold":
		return strconv.Itoa(item.MinThreshold), true
	case "max_threshold":
		return strconv.Itoa(item.MaxThreshold), true
	case "status":
		return item.Status, true
	}
	return "", false
}
