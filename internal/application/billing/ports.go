package billing

import (
	"context"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción que incluye
// los repositorios de órdenes y facturas. Es la frontera de unidad de trabajo
// de la generación de facturas: la lectura de la orden y el insert de la
// factura comparten transacción, con rollback ante cualquier error.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		orderRepo repository.WorkOrderRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
// order puede ser nil si la orden origen fue eliminada; settings aporta el
// perfil del negocio (nombre, RFC, contacto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		order *entity.WorkOrder,
		settings *entity.Settings,
	) ([]byte, error)
}
