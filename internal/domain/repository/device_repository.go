package repository

import "github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"

// DeviceRepository define el puerto de persistencia para Device.
type DeviceRepository interface {
	Create(device *entity.Device) error
	GetByID(id string) (*entity.Device, error)
	Update(device *entity.Device) error
	List(limit, offset int) ([]*entity.Device, error)
	Delete(id string) error
}
