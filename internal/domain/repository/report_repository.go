package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TopSellerResult producto con su cantidad acumulada de saídas.
type TopSellerResult struct {
	ProductID    string
	ProductName  string
	QuantitySold int
}

// LowStockResult producto en o por debajo del estoque mínimo.
type LowStockResult struct {
	ProductID    string
	ProductName  string
	Quantity     int
	MinimumStock int
}

// CategoryCountResult cantidad de productos por categoría.
type CategoryCountResult struct {
	CategoryID   string
	CategoryName string
	ProductCount int
}

// StockValueResult totales del inventario.
type StockValueResult struct {
	TotalValue      decimal.Decimal // Σ quantity × price
	TotalProducts   int
	OutOfStockCount int // quantity = 0
	LowStockCount   int // quantity <= minimum_stock
}

// ReportRepository consultas de sólo lectura para relatórios.
// Las implementaciones no modifican datos.
type ReportRepository interface {
	// TopSellers devuelve los `limit` productos con más unidades en saídas (0 si no tienen).
	TopSellers(ctx context.Context, limit int) ([]TopSellerResult, error)
	// LowStock ordenado por cantidad ascendente.
	LowStock(ctx context.Context) ([]LowStockResult, error)
	// ProductsByCategory incluye categorías sin productos, ordenado por cantidad descendente.
	ProductsByCategory(ctx context.Context) ([]CategoryCountResult, error)
	StockValue(ctx context.Context) (*StockValueResult, error)
	CountCategories(ctx context.Context) (int, error)
}
