// Package workorder contiene los casos de uso del ciclo de vida de las
// órdenes de trabajo del taller: alta, edición, cierre (entrega) y filtrado.
package workorder

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
)

// UseCase casos de uso de órdenes de trabajo.
type UseCase struct {
	repo repository.WorkOrderRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.WorkOrderRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Create crea una orden de trabajo nueva con estado inicial (received si no
// se indica otro), CreatedAt al momento actual y UpdatedAt sin asignar.
// Rechaza campos de texto vacíos tras recortar espacios y costo negativo.
func (uc *UseCase) Create(in dto.CreateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	customerName := strings.TrimSpace(in.CustomerName)
	deviceDescription := strings.TrimSpace(in.DeviceDescription)
	problemDescription := strings.TrimSpace(in.ProblemDescription)
	if customerName == "" || deviceDescription == "" || problemDescription == "" {
		return nil, domain.ErrInvalidInput
	}

	cost, err := money.New(in.EstimatedCost).RequireNonNegative()
	if err != nil {
		return nil, domain.ErrNegativeAmount
	}

	status := in.Status
	if status == "" {
		status = entity.StatusReceived
	}
	if _, err := entity.ParseWorkOrderStatus(status); err != nil {
		return nil, domain.ErrInvalidStatus
	}

	order := &entity.WorkOrder{
		ID:                 uuid.New().String(),
		CustomerName:       customerName,
		DeviceDescription:  deviceDescription,
		ProblemDescription: problemDescription,
		Status:             status,
		EstimatedCost:      cost,
		CreatedAt:          time.Now(),
		UpdatedAt:          nil,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("customer", customerName).
		Str("device", deviceDescription).
		Msg("orden de trabajo creada")
	return toWorkOrderResponse(order), nil
}

// Close marca la orden como entregada.
//
// Si ya estaba entregada la operación es un no-op idempotente: se registra
// una advertencia, no se toca UpdatedAt y no es un error. En cualquier otro
// estado pasa a delivered con UpdatedAt al momento actual.
func (uc *UseCase) Close(id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if order.IsDelivered() {
		uc.log.Warn().Str("order_id", order.ID).Msg("se intentó cerrar una orden que ya estaba entregada")
		return toWorkOrderResponse(order), nil
	}

	now := time.Now()
	order.Status = entity.StatusDelivered
	order.UpdatedAt = &now
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}

	uc.log.Info().Str("order_id", order.ID).Str("customer", order.CustomerName).Msg("orden marcada como entregada")
	return toWorkOrderResponse(order), nil
}

// Get obtiene una orden por ID.
func (uc *UseCase) Get(id string) (*dto.WorkOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toWorkOrderResponse(order), nil
}

// Update edita los campos de una orden existente y asigna UpdatedAt.
// Las transiciones de estado son libres salvo la regla de cierre; el taller
// puede mover una orden a cualquier estado válido.
func (uc *UseCase) Update(id string, in dto.UpdateWorkOrderRequest) (*dto.WorkOrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	customerName := strings.TrimSpace(in.CustomerName)
	deviceDescription := strings.TrimSpace(in.DeviceDescription)
	problemDescription := strings.TrimSpace(in.ProblemDescription)
	if customerName == "" || deviceDescription == "" || problemDescription == "" {
		return nil, domain.ErrInvalidInput
	}
	cost, err := money.New(in.EstimatedCost).RequireNonNegative()
	if err != nil {
		return nil, domain.ErrNegativeAmount
	}
	status, err := entity.ParseWorkOrderStatus(in.Status)
	if err != nil {
		return nil, domain.ErrInvalidStatus
	}

	now := time.Now()
	order.CustomerName = customerName
	order.DeviceDescription = deviceDescription
	order.ProblemDescription = problemDescription
	order.Status = status
	order.EstimatedCost = cost
	order.UpdatedAt = &now

	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toWorkOrderResponse(order), nil
}

// Delete elimina una orden. Las facturas ya generadas conservan sus montos
// (el vínculo queda en NULL a nivel de base de datos).
func (uc *UseCase) Delete(id string) error {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toWorkOrderResponse(o *entity.WorkOrder) *dto.WorkOrderResponse {
	return &dto.WorkOrderResponse{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		DeviceDescription:  o.DeviceDescription,
		ProblemDescription: o.ProblemDescription,
		Status:             o.Status,
		EstimatedCost:      o.EstimatedCost.Decimal(),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}
