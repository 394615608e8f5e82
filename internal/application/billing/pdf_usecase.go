package billing

import (
	"context"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

// PDFUseCase arma los datos y delega el renderizado de la factura al
// generador PDF.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.WorkOrderRepository
	settingsRepo repository.SettingsRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.WorkOrderRepository,
	settingsRepo repository.SettingsRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		generator:    generator,
	}
}

// GenerateInvoicePDF devuelve los bytes del PDF de la factura. La factura es
// una instantánea estable: si la orden origen ya no existe, el PDF se genera
// igual con los montos guardados.
func (uc *PDFUseCase) GenerateInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	var order *entity.WorkOrder
	if invoice.WorkOrderID != nil {
		order, err = uc.orderRepo.GetByID(*invoice.WorkOrderID)
		if err != nil {
			return nil, err
		}
	}

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
	}

	return uc.generator.GenerateInvoicePDF(ctx, invoice, order, settings)
}
