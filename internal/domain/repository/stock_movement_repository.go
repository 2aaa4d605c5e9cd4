package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// StockMovementRepository define el puerto del ledger. Append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// List devuelve todos los movimientos con el nombre actual del producto, más recientes primero.
	List(ctx context.Context) ([]*entity.StockMovement, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error)
	CountByProduct(ctx context.Context, productID string) (int, error)
}
