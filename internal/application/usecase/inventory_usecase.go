package usecase

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

// InventoryUseCase casos de uso de refacciones e inventario del taller.
type InventoryUseCase struct {
	repo repository.InventoryRepository
	log  *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, log: log}
}

// Create da de alta una refacción. Cantidad inicial y precios no pueden ser
// negativos.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	unitCost, err := money.New(in.UnitCost).RequireNonNegative()
	if err != nil {
		return nil, domain.ErrNegativeAmount
	}
	unitPrice, err := money.New(in.UnitPrice).RequireNonNegative()
	if err != nil {
		return nil, domain.ErrNegativeAmount
	}

	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  in.Quantity,
		UnitCost:  unitCost,
		UnitPrice: unitPrice,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// Get obtiene una refacción por ID.
func (uc *InventoryUseCase) Get(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryItemResponse(item), nil
}

// Update edita una refacción existente (sin tocar existencias; para eso está
// AdjustStock).
func (uc *InventoryUseCase) Update(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	unitCost, err := money.New(in.UnitCost).RequireNonNegative()
	if err != nil {
		return nil, domain.ErrNegativeAmount
	}
	unitPrice, err := money.New(in.UnitPrice).RequireNonNegative()
	if err != nil {
		return nil, domain.ErrNegativeAmount
	}
	item.Name = name
	item.UnitCost = unitCost
	item.UnitPrice = unitPrice
	item.Notes = in.Notes
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toInventoryItemResponse(item), nil
}

// AdjustStock suma delta a las existencias (negativo descuenta). Devuelve
// domain.ErrInsufficientStock si el resultado quedaría negativo.
func (uc *InventoryUseCase) AdjustStock(id string, in dto.AdjustStockRequest) (*dto.InventoryItemResponse, error) {
	if in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.AdjustQuantity(id, in.Delta)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("item", item.Name).Int("delta", in.Delta).Int("quantity", item.Quantity).Msg("existencias ajustadas")
	return toInventoryItemResponse(item), nil
}

// List lista refacciones con búsqueda y paginación.
func (uc *InventoryUseCase) List(search string, page dto.PageRequest) ([]*dto.InventoryItemResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(strings.TrimSpace(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toInventoryItemResponse(item))
	}
	return out, nil
}

// Delete elimina una refacción.
func (uc *InventoryUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toInventoryItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		UnitCost:  i.UnitCost.Decimal(),
		UnitPrice: i.UnitPrice.Decimal(),
		Notes:     i.Notes,
	}
}
