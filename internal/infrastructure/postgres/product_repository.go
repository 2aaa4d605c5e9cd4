package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `
	p.id, p.name, p.quantity, p.price, p.category_id, c.name, p.minimum_stock, p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.CategoryID, &p.CategoryName,
		&p.MinimumStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto con su cantidad inicial.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, quantity, price, category_id, minimum_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Quantity, product.Price, product.CategoryID,
		product.MinimumStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if invalid := outOfRange(err); invalid != nil {
			return invalid
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre de su categoría.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate obtiene el producto y bloquea su fila hasta el fin de la transacción (SELECT FOR UPDATE).
// Sólo la fila de products: la categoría no se bloquea.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.get(ctx, id, "FOR UPDATE OF p")
}

func (r *ProductRepo) get(ctx context.Context, id, lock string) (*entity.Product, error) {
	if !isUUID(id) {
		return nil, nil
	}
	query := `SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1 ` + lock
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista todos los productos ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.name, p.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza nombre, precio, categoría y estoque mínimo. Nunca la cantidad.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if !isUUID(product.ID) {
		return domain.ErrProductNotFound
	}
	query := `
		UPDATE products SET name = $2, price = $3, category_id = $4, minimum_stock = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Price, product.CategoryID, product.MinimumStock, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		if invalid := outOfRange(err); invalid != nil {
			return invalid
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// AdjustQuantity suma delta a la cantidad y devuelve la cantidad resultante.
// El CHECK (quantity >= 0) de la tabla es la última barrera contra estoque negativo.
func (r *ProductRepo) AdjustQuantity(ctx context.Context, id string, delta int) (int, error) {
	if !isUUID(id) {
		return 0, domain.ErrProductNotFound
	}
	var quantity int
	err := r.q.QueryRow(ctx,
		`UPDATE products SET quantity = quantity + $2, updated_at = now() WHERE id = $1 RETURNING quantity`,
		id, delta,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrProductNotFound
		}
		if isCheckViolation(err) {
			return 0, domain.ErrInsufficientStock
		}
		if invalid := outOfRange(err); invalid != nil {
			return 0, invalid
		}
		return 0, fmt.Errorf("adjust product quantity: %w", err)
	}
	return quantity, nil
}

// Delete elimina un producto por ID. Con movimientos, la FK ON DELETE RESTRICT lo impide.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return domain.ErrProductNotFound
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductHasMovements
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
