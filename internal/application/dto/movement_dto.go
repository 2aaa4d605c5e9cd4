package dto

import "time"

// MovementRequest body para POST /api/movimentos/entrada y /api/movimentos/saida.
type MovementRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0,max=2147483647"`
}

// MovementResponse movimiento creado más la cantidad resultante del producto.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	Kind        string    `json:"kind"`
	Quantity    int       `json:"quantity"`
	NewQuantity int       `json:"newQuantity"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MovementListItem elemento del listado del ledger.
type MovementListItem struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Kind        string    `json:"kind"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy,omitempty"`
}
