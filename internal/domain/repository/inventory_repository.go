package repository

import "github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para InventoryItem.
type InventoryRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// List devuelve refacciones ordenadas por nombre; search filtra por
	// subcadena insensible a mayúsculas sobre nombre y notas.
	List(search string, limit, offset int) ([]*entity.InventoryItem, error)
	// AdjustQuantity suma delta (puede ser negativo) a las existencias de
	// forma atómica. Devuelve domain.ErrInsufficientStock si el resultado
	// quedaría negativo.
	AdjustQuantity(id string, delta int) (*entity.InventoryItem, error)
	Delete(id string) error
}
