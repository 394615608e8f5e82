package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest entrada para actualizar el perfil del negocio.
type UpdateSettingsRequest struct {
	BusinessName   string          `json:"business_name" validate:"required,min=1,max=200"`
	TaxID          string          `json:"tax_id,omitempty"`
	Address        string          `json:"address,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty" validate:"omitempty,email"`
	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
}

// SettingsResponse salida de la configuración del negocio.
type SettingsResponse struct {
	BusinessName   string          `json:"business_name"`
	TaxID          string          `json:"tax_id,omitempty"`
	Address        string          `json:"address,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
