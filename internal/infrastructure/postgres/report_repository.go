package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estoque-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de sólo lectura para los relatórios.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TopSellers devuelve los `limit` productos con más unidades en saídas.
// Productos sin saídas aparecen con 0 (LEFT JOIN).
func (r *ReportRepo) TopSellers(ctx context.Context, limit int) ([]repository.TopSellerResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    COALESCE(SUM(m.quantity), 0)::int AS quantity_sold
	FROM products p
	LEFT JOIN stock_movements m ON m.product_id = p.id AND m.kind = 'out'
	GROUP BY p.id, p.name
	ORDER BY quantity_sold DESC, p.name
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopSellers: %w", err)
	}
	defer rows.Close()

	results := make([]repository.TopSellerResult, 0, limit)
	for rows.Next() {
		var item repository.TopSellerResult
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.QuantitySold); err != nil {
			return nil, fmt.Errorf("report.TopSellers scan: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.TopSellers rows: %w", err)
	}
	return results, nil
}

// LowStock devuelve los productos con quantity <= minimum_stock, menor cantidad primero.
func (r *ReportRepo) LowStock(ctx context.Context) ([]repository.LowStockResult, error) {
	const query = `
	SELECT id, name, quantity, minimum_stock
	FROM products
	WHERE quantity <= minimum_stock
	ORDER BY quantity ASC, name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.LowStock: %w", err)
	}
	defer rows.Close()

	results := make([]repository.LowStockResult, 0)
	for rows.Next() {
		var item repository.LowStockResult
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.MinimumStock); err != nil {
			return nil, fmt.Errorf("report.LowStock scan: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.LowStock rows: %w", err)
	}
	return results, nil
}

// ProductsByCategory cuenta productos por categoría, incluidas las vacías.
func (r *ReportRepo) ProductsByCategory(ctx context.Context) ([]repository.CategoryCountResult, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    COUNT(p.id)::int AS product_count
	FROM categories c
	LEFT JOIN products p ON p.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY product_count DESC, c.name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.ProductsByCategory: %w", err)
	}
	defer rows.Close()

	results := make([]repository.CategoryCountResult, 0)
	for rows.Next() {
		var item repository.CategoryCountResult
		if err := rows.Scan(&item.CategoryID, &item.CategoryName, &item.ProductCount); err != nil {
			return nil, fmt.Errorf("report.ProductsByCategory scan: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.ProductsByCategory rows: %w", err)
	}
	return results, nil
}

// StockValue devuelve Σ quantity × price y los contadores del inventario en una sola lectura.
func (r *ReportRepo) StockValue(ctx context.Context) (*repository.StockValueResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity * price), 0)                     AS total_value,
	    COUNT(*)::int                                           AS total_products,
	    COUNT(*) FILTER (WHERE quantity = 0)::int               AS out_of_stock,
	    COUNT(*) FILTER (WHERE quantity <= minimum_stock)::int  AS low_stock
	FROM products`

	var res repository.StockValueResult
	err := r.q.QueryRow(ctx, query).Scan(
		&res.TotalValue,
		&res.TotalProducts,
		&res.OutOfStockCount,
		&res.LowStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("report.StockValue: %w", err)
	}
	return &res, nil
}

// CountCategories devuelve el total de categorías.
func (r *ReportRepo) CountCategories(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)::int FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("report.CountCategories: %w", err)
	}
	return n, nil
}
