package repository

import (
	"time"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
)

// WorkOrderFilter criterios estructurados de filtrado. Todos opcionales;
// los presentes se combinan con AND. El filtro de texto libre se aplica
// después, en el caso de uso.
type WorkOrderFilter struct {
	Status  *string    // igualdad exacta
	MinDate *time.Time // createdAt >= MinDate (inclusivo)
	MaxDate *time.Time // createdAt <= MaxDate (inclusivo)
}

// WorkOrderRepository define el puerto de persistencia para WorkOrder (DIP).
type WorkOrderRepository interface {
	Create(order *entity.WorkOrder) error
	GetByID(id string) (*entity.WorkOrder, error)
	Update(order *entity.WorkOrder) error
	// Filter devuelve las órdenes que cumplen los criterios, ordenadas por
	// fecha de creación descendente (más recientes primero).
	Filter(filter WorkOrderFilter) ([]*entity.WorkOrder, error)
	Delete(id string) error
}
