package entity

import "time"

// MovementKind tipo de movimiento del ledger.
type MovementKind string

const (
	MovementIn  MovementKind = "in"  // entrada
	MovementOut MovementKind = "out" // saída
)

// Valid indica si el tipo es uno de los soportados.
func (k MovementKind) Valid() bool {
	return k == MovementIn || k == MovementOut
}

// StockMovement registro append-only del ledger. Nunca se actualiza ni se borra.
type StockMovement struct {
	ID          string
	ProductID   string
	ProductName string // nombre actual del producto (sólo en listados)
	Kind        MovementKind
	Quantity    int // siempre positivo; el signo lo da Kind
	CreatedAt   time.Time
	CreatedBy   string // UserID, vacío si no se conoce
}

// Delta devuelve el efecto del movimiento sobre la cantidad del producto.
func (m *StockMovement) Delta() int {
	if m.Kind == MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}
