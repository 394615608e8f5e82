package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

var _ repository.DeviceRepository = (*DeviceRepo)(nil)

// DeviceRepo implementación del puerto DeviceRepository sobre PostgreSQL.
type DeviceRepo struct {
	q Querier
}

// NewDeviceRepository construye el adaptador de persistencia para equipos.
func NewDeviceRepository(q Querier) *DeviceRepo {
	return &DeviceRepo{q: q}
}

const deviceColumns = `id, nickname, brand, model, serial_number, created_at, updated_at`

// Create persiste un nuevo equipo.
func (r *DeviceRepo) Create(device *entity.Device) error {
	query := `
		INSERT INTO devices (id, nickname, brand, model, serial_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		device.ID, device.Nickname, device.Brand, device.Model,
		device.SerialNumber, device.CreatedAt, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert device: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID. Devuelve nil, nil si no existe.
func (r *DeviceRepo) GetByID(id string) (*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`
	var d entity.Device
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Nickname, &d.Brand, &d.Model, &d.SerialNumber, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device: %w", err)
	}
	return &d, nil
}

// Update actualiza un equipo.
func (r *DeviceRepo) Update(device *entity.Device) error {
	query := `
		UPDATE devices SET nickname = $2, brand = $3, model = $4, serial_number = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		device.ID, device.Nickname, device.Brand, device.Model,
		device.SerialNumber, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// List devuelve equipos ordenados por fecha de alta.
func (r *DeviceRepo) List(limit, offset int) ([]*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Device
	for rows.Next() {
		var d entity.Device
		if err := rows.Scan(&d.ID, &d.Nickname, &d.Brand, &d.Model, &d.SerialNumber, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un equipo por ID.
func (r *DeviceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete device: %w", err)
	}
	return nil
}
