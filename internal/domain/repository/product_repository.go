package repository

import (
	"context"

	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate lee el producto y bloquea la fila hasta el fin de la transacción.
	// Sólo tiene sentido dentro de TxRunner.Run. Devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve todos los productos con el nombre de la categoría, ordenados por nombre.
	List(ctx context.Context) ([]*entity.Product, error)
	// Update modifica nombre, precio, categoría y estoque mínimo. Nunca la cantidad.
	// Devuelve ErrProductNotFound si el id no existe.
	Update(ctx context.Context, product *entity.Product) error
	// AdjustQuantity suma delta a la cantidad y devuelve la nueva cantidad.
	AdjustQuantity(ctx context.Context, id string, delta int) (int, error)
	// Delete devuelve ErrProductNotFound si el id no existe.
	Delete(ctx context.Context, id string) error
}
