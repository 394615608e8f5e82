package repository

import "github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// List devuelve las facturas ordenadas por fecha de emisión descendente.
	// isPaid nil lista todas; con valor filtra por estado de pago.
	List(isPaid *bool, limit, offset int) ([]*entity.Invoice, error)
	// SetPaid actualiza el estado de pago y el método de pago.
	SetPaid(id string, isPaid bool, paymentMethod *string) error
	Delete(id string) error
}
