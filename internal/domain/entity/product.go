package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinimumStock umbral de estoque mínimo cuando el producto no define uno.
const DefaultMinimumStock = 10

// MaxQuantity límite de las columnas INTEGER de cantidades y estoque mínimo.
const MaxQuantity = math.MaxInt32

// MaxPrice cota exclusiva de NUMERIC(12,2): 10 dígitos enteros.
var MaxPrice = decimal.New(1, 10)

// Product representa un producto del catálogo.
// Quantity sólo cambia vía movimientos del ledger (entrada/saída).
type Product struct {
	ID           string
	Name         string
	Quantity     int
	Price        decimal.Decimal // 2 decimales
	CategoryID   string
	CategoryName string // proyección del JOIN con categories
	MinimumStock int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock indica si el producto está en o por debajo del estoque mínimo.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinimumStock
}

// IsOutOfStock indica si el producto no tiene unidades.
func (p *Product) IsOutOfStock() bool {
	return p.Quantity == 0
}
