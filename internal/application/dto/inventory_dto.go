package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest entrada para dar de alta una refacción.
type CreateInventoryItemRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Quantity  int             `json:"quantity" validate:"min=0"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes,omitempty"`
}

// UpdateInventoryItemRequest entrada para editar una refacción.
type UpdateInventoryItemRequest = CreateInventoryItemRequest

// AdjustStockRequest entrada para ajustar existencias (delta positivo o
// negativo).
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// InventoryItemResponse salida de una refacción.
type InventoryItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes,omitempty"`
}
