package inventory

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad del ledger: el INSERT del movimiento y el UPDATE de la cantidad
// se confirman juntos o no se confirman.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
