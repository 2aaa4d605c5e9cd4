package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Quantity es la cantidad inicial; a partir de ahí sólo cambia vía movimientos.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=100"`
	Quantity     *int            `json:"quantity" validate:"required,min=0,max=2147483647"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"categoryId" validate:"required,uuid"`
	MinimumStock *int            `json:"minimumStock" validate:"omitempty,min=0,max=2147483647"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Price        *decimal.Decimal `json:"price"`
	CategoryID   *string          `json:"categoryId" validate:"omitempty,uuid"`
	MinimumStock *int             `json:"minimumStock" validate:"omitempty,min=0,max=2147483647"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"categoryId"`
	Category     string          `json:"category"`
	MinimumStock int             `json:"minimumStock"`
	LowStock     bool            `json:"lowStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
