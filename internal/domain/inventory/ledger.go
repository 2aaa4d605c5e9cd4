package inventory

import (
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ValidateQuantity exige una cantidad entera positiva para cualquier movimiento.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantidade deve ser maior que zero", domain.ErrInvalidInput)
	}
	if quantity > entity.MaxQuantity {
		return fmt.Errorf("%w: quantidade excede o limite de %d", domain.ErrInvalidInput, entity.MaxQuantity)
	}
	return nil
}

// Apply calcula la nueva cantidad del producto tras un movimiento (servicio de dominio).
// Una saída mayor que el estoque actual devuelve ErrInsufficientStock y no altera nada.
// Una entrada que supere MaxQuantity devuelve ErrInvalidInput.
func Apply(current int, kind entity.MovementKind, quantity int) (int, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return current, err
	}
	switch kind {
	case entity.MovementIn:
		if current > entity.MaxQuantity-quantity {
			return current, fmt.Errorf("%w: estoque resultante excede o limite de %d", domain.ErrInvalidInput, entity.MaxQuantity)
		}
		return current + quantity, nil
	case entity.MovementOut:
		if current < quantity {
			return current, domain.ErrInsufficientStock
		}
		return current - quantity, nil
	default:
		return current, fmt.Errorf("%w: tipo de movimento %q", domain.ErrInvalidInput, kind)
	}
}

// Replay reconstruye la cantidad a partir de la cantidad inicial y los movimientos del ledger.
// Se usa para verificar que products.quantity coincide con el historial.
func Replay(initial int, movements []*entity.StockMovement) int {
	q := initial
	for _, m := range movements {
		q += m.Delta()
	}
	return q
}
