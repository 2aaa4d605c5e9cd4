package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopSellerDTO producto con su total de unidades en saídas.
type TopSellerDTO struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	QuantitySold int    `json:"quantitySold"`
}

// LowStockDTO producto en o por debajo del estoque mínimo.
type LowStockDTO struct {
	ProductID    string `json:"productId"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	MinimumStock int    `json:"minimumStock"`
}

// CategoryCountDTO cantidad de productos por categoría.
type CategoryCountDTO struct {
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Products   int    `json:"products"`
}

// StockValueDTO valor total del inventario y contadores.
type StockValueDTO struct {
	TotalValue      decimal.Decimal `json:"totalValue"`
	TotalProducts   int             `json:"totalProducts"`
	OutOfStockCount int             `json:"outOfStock"`
	LowStockCount   int             `json:"lowStock"`
}

// SummaryDTO resumen general del inventario.
type SummaryDTO struct {
	StockValueDTO
	TotalCategories int       `json:"totalCategories"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// StockReportDTO contenido de los relatórios exportables (PDF / XLSX).
type StockReportDTO struct {
	Title      string
	Summary    SummaryDTO
	LowStock   []LowStockDTO
	TopSellers []TopSellerDTO
	ByCategory []CategoryCountDTO
}
