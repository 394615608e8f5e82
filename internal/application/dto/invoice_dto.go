package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest entrada para generar una factura desde una orden.
// TaxRate nil usa la tasa por defecto de la configuración del negocio.
type GenerateInvoiceRequest struct {
	WorkOrderID   string           `json:"work_order_id" validate:"required,uuid"`
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`
	MarkAsPaid    bool             `json:"mark_as_paid"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// SetInvoicePaidRequest entrada para marcar/desmarcar una factura como pagada.
type SetInvoicePaidRequest struct {
	IsPaid        bool    `json:"is_paid"`
	PaymentMethod *string `json:"payment_method,omitempty"`
}

// ListInvoicesRequest filtros para el listado de facturas.
type ListInvoicesRequest struct {
	IsPaid *bool `query:"is_paid"`
	PageRequest
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	WorkOrderID   *string         `json:"work_order_id,omitempty"`
	IssueDate     time.Time       `json:"issue_date"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Total         decimal.Decimal `json:"total"`
	IsPaid        bool            `json:"is_paid"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}
