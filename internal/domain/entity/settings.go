package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings configuración del negocio: perfil fiscal y tasa de impuesto por
// defecto. Se persiste como registro único y la consumen la generación de
// facturas y el renderizado de PDF.
type Settings struct {
	BusinessName   string
	TaxID          string // RFC u otro identificador fiscal
	Address        string
	Phone          string
	Email          string
	DefaultTaxRate decimal.Decimal // ej. 0.16 para IVA 16%
	UpdatedAt      time.Time
}

// DefaultSettings valores iniciales cuando aún no hay configuración guardada.
func DefaultSettings() *Settings {
	return &Settings{
		BusinessName:   "CompuGestion",
		DefaultTaxRate: decimal.RequireFromString("0.16"),
		UpdatedAt:      time.Now(),
	}
}
