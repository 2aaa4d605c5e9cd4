package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estoque-api/internal/domain"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Sólo inserta y lee: stock_movements es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	createdBy := (*string)(nil)
	if m.CreatedBy != "" && isUUID(m.CreatedBy) {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock_movements (id, product_id, kind, quantity, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.ProductID, string(m.Kind), m.Quantity, m.CreatedAt, createdBy,
	)
	if err != nil {
		return movementInsertError(err)
	}
	return nil
}

// movementInsertError distingue la FK violada: un created_by huérfano significa que
// el usuario del token ya no existe, no que falte el producto.
func movementInsertError(err error) error {
	switch {
	case isForeignKeyViolation(err) && constraintName(err) == fkMovementCreatedBy:
		return fmt.Errorf("%w: usuário do token não existe", domain.ErrUnauthorized)
	case isForeignKeyViolation(err):
		return domain.ErrProductNotFound
	case isCheckViolation(err):
		return fmt.Errorf("%w: movimento inválido", domain.ErrInvalidInput)
	}
	if invalid := outOfRange(err); invalid != nil {
		return invalid
	}
	return fmt.Errorf("create stock movement: %w", err)
}

const movementSelect = `
	SELECT m.id, m.product_id, p.name, m.kind, m.quantity, m.created_at, m.created_by
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id`

// List devuelve todos los movimientos con el nombre actual del producto, más recientes primero.
func (r *StockMovementRepo) List(ctx context.Context) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, movementSelect+` ORDER BY m.created_at DESC, m.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	return scanMovements(rows)
}

// ListByProduct devuelve el historial de un producto, más recientes primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	if !isUUID(productID) {
		return []*entity.StockMovement{}, nil
	}
	rows, err := r.q.Query(ctx,
		movementSelect+` WHERE m.product_id = $1 ORDER BY m.created_at DESC, m.id DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements by product: %w", err)
	}
	return scanMovements(rows)
}

// CountByProduct cuenta los movimientos de un producto.
func (r *StockMovementRepo) CountByProduct(ctx context.Context, productID string) (int, error) {
	if !isUUID(productID) {
		return 0, nil
	}
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_movements WHERE product_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return n, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	list := make([]*entity.StockMovement, 0)
	for rows.Next() {
		var (
			m         entity.StockMovement
			kind      string
			createdBy *string
		)
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &kind, &m.Quantity, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.Kind = entity.MovementKind(kind)
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
