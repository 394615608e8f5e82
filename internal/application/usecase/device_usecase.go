package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

// DeviceUseCase casos de uso para equipos registrados en el taller.
type DeviceUseCase struct {
	repo repository.DeviceRepository
}

// NewDeviceUseCase construye el caso de uso.
func NewDeviceUseCase(repo repository.DeviceRepository) *DeviceUseCase {
	return &DeviceUseCase{repo: repo}
}

// Create registra un equipo.
func (uc *DeviceUseCase) Create(in dto.CreateDeviceRequest) (*dto.DeviceResponse, error) {
	nickname := strings.TrimSpace(in.Nickname)
	if nickname == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	device := &entity.Device{
		ID:           uuid.New().String(),
		Nickname:     nickname,
		Brand:        in.Brand,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(device); err != nil {
		return nil, err
	}
	return toDeviceResponse(device), nil
}

// Get obtiene un equipo por ID.
func (uc *DeviceUseCase) Get(id string) (*dto.DeviceResponse, error) {
	device, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}
	return toDeviceResponse(device), nil
}

// Update edita un equipo existente.
func (uc *DeviceUseCase) Update(id string, in dto.UpdateDeviceRequest) (*dto.DeviceResponse, error) {
	device, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if device == nil {
		return nil, domain.ErrNotFound
	}
	nickname := strings.TrimSpace(in.Nickname)
	if nickname == "" {
		return nil, domain.ErrInvalidInput
	}
	device.Nickname = nickname
	device.Brand = in.Brand
	device.Model = in.Model
	device.SerialNumber = in.SerialNumber
	device.UpdatedAt = time.Now()
	if err := uc.repo.Update(device); err != nil {
		return nil, err
	}
	return toDeviceResponse(device), nil
}

// List lista equipos con paginación.
func (uc *DeviceUseCase) List(page dto.PageRequest) ([]*dto.DeviceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DeviceResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDeviceResponse(d))
	}
	return out, nil
}

// Delete elimina un equipo.
func (uc *DeviceUseCase) Delete(id string) error {
	device, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if device == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toDeviceResponse(d *entity.Device) *dto.DeviceResponse {
	return &dto.DeviceResponse{
		ID:           d.ID,
		Nickname:     d.Nickname,
		Brand:        d.Brand,
		Model:        d.Model,
		SerialNumber: d.SerialNumber,
	}
}
