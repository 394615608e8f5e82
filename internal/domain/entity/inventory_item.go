package entity

import (
	"time"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
)

// InventoryItem representa una refacción o componente del inventario del
// taller, utilizable en una orden de reparación.
type InventoryItem struct {
	ID        string
	Name      string // "RAM DDR4 8GB", "Fuente 600W"
	Quantity  int    // existencias; nunca negativo
	UnitCost  money.Money
	UnitPrice money.Money
	Notes     string // proveedor, compatibilidad, etc.
	CreatedAt time.Time
	UpdatedAt time.Time
}
