package inventory

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// DeriveStatus implementa la política de estado del ítem (servicio de dominio).
// COMPRAS cuando la cantidad actual es menor o igual al umbral mínimo;
// SUFFICIENT en cualquier otro caso. Función pura, sin efectos.
func DeriveStatus(currentQuantity, minThreshold int) string {
	if currentQuantity <= minThreshold {
		return entity.StatusCompras
	}
	return entity.StatusSufficient
}
