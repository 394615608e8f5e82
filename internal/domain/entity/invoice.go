package entity

import (
	"time"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
)

// Invoice representa una factura o comprobante de cobro generado a partir de
// una orden de trabajo.
//
// Es una instantánea en el tiempo: Subtotal se copia del costo estimado de la
// orden al momento de generarla y nunca se recalcula aunque la orden cambie
// después. El invariante Total == Subtotal + TaxAmount se cumple al crearla.
type Invoice struct {
	ID            string
	InvoiceNumber string // folio legible: FAC-yyyyMMdd-HHmmss-<sufijo>
	WorkOrderID   *string // nil si la orden fue eliminada; la factura conserva sus montos
	IssueDate     time.Time
	Subtotal      money.Money
	TaxAmount     money.Money
	Total         money.Money
	IsPaid        bool
	PaymentMethod *string // texto libre: efectivo, tarjeta, transferencia...
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
