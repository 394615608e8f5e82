package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La tabla app_settings mantiene un registro único con id fijo.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de persistencia de configuración.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

const settingsRowID = 1

// Get devuelve la configuración actual, o nil si aún no se ha guardado.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT business_name, tax_id, address, phone, email, default_tax_rate, updated_at
		FROM app_settings WHERE id = $1`
	var (
		s    entity.Settings
		rate decimal.Decimal
	)
	err := r.q.QueryRow(context.Background(), query, settingsRowID).Scan(
		&s.BusinessName, &s.TaxID, &s.Address, &s.Phone, &s.Email, &rate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	s.DefaultTaxRate = rate
	return &s, nil
}

// Save inserta o reemplaza la configuración mediante upsert sobre el id fijo.
func (r *SettingsRepo) Save(settings *entity.Settings) error {
	query := `
		INSERT INTO app_settings (id, business_name, tax_id, address, phone, email, default_tax_rate, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			tax_id = EXCLUDED.tax_id,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			default_tax_rate = EXCLUDED.default_tax_rate,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settingsRowID, settings.BusinessName, settings.TaxID, settings.Address,
		settings.Phone, settings.Email, settings.DefaultTaxRate, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
