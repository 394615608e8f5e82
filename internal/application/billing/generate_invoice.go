// Package billing contiene los casos de uso de facturación: generación de
// facturas a partir de órdenes de trabajo, consulta, pago y PDF.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
)

// invoiceNumberPrefix prefijo del folio legible.
const invoiceNumberPrefix = "FAC-"

// GenerateInvoiceUseCase genera una factura (instantánea de cobro) a partir
// de una orden de trabajo.
type GenerateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	settingsRepo repository.SettingsRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewGenerateInvoiceUseCase construye el caso de uso.
func NewGenerateInvoiceUseCase(txRunner BillingTxRunner, settingsRepo repository.SettingsRepository, log *logger.Logger) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		txRunner:     txRunner,
		settingsRepo: settingsRepo,
		log:          log,
		now:          time.Now,
	}
}

// Generate crea y persiste la factura de una orden.
//
// La orden debe existir y estar en estado facturable (ready o delivered); la
// regla se aplica aquí, no solo en la capa de presentación. Los montos se
// calculan con decimal exacto: subtotal = costo estimado de la orden (copia,
// no referencia viva), impuesto = subtotal * tasa redondeado a centavos,
// total = subtotal + impuesto. El redondeo ocurre aquí para que la respuesta
// coincida con lo persistido (las columnas guardan dos decimales). La tasa
// por defecto sale de la configuración del negocio.
//
// Lectura de la orden e insert de la factura corren en una sola transacción:
// la factura se crea completa o no se crea.
func (uc *GenerateInvoiceUseCase) Generate(ctx context.Context, in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.WorkOrderID == "" {
		return nil, domain.ErrInvalidInput
	}

	taxRate, err := uc.resolveTaxRate(in.TaxRate)
	if err != nil {
		return nil, err
	}

	var invoice *entity.Invoice
	err = uc.txRunner.RunBilling(ctx, func(orderRepo repository.WorkOrderRepository, invoiceRepo repository.InvoiceRepository) error {
		order, err := orderRepo.GetByID(in.WorkOrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if !order.IsInvoiceable() {
			return domain.ErrOrderNotInvoiceable
		}

		now := uc.now()
		subtotal := order.EstimatedCost
		taxAmount := subtotal.MulRate(taxRate).RoundCents()
		total := subtotal.Add(taxAmount)

		orderID := order.ID
		invoice = &entity.Invoice{
			ID:            uuid.New().String(),
			InvoiceNumber: generateInvoiceNumber(now),
			WorkOrderID:   &orderID,
			IssueDate:     now,
			Subtotal:      subtotal,
			TaxAmount:     taxAmount,
			Total:         total,
			IsPaid:        in.MarkAsPaid,
			PaymentMethod: in.PaymentMethod,
			Notes:         in.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		return invoiceRepo.Create(invoice)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_number", invoice.InvoiceNumber).
		Str("order_id", in.WorkOrderID).
		Str("total", invoice.Total.StringFixed()).
		Msg("factura generada")
	return toInvoiceResponse(invoice), nil
}

// resolveTaxRate devuelve la tasa solicitada o, en su ausencia, la tasa por
// defecto de la configuración. Una tasa negativa es inválida.
func (uc *GenerateInvoiceUseCase) resolveTaxRate(requested *decimal.Decimal) (decimal.Decimal, error) {
	if requested != nil {
		if requested.IsNegative() {
			return decimal.Decimal{}, domain.ErrNegativeTaxRate
		}
		return *requested, nil
	}
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return decimal.Decimal{}, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
	}
	return settings.DefaultTaxRate, nil
}

// generateInvoiceNumber arma el folio: prefijo + fecha y hora al segundo +
// sufijo aleatorio. El sufijo elimina la colisión de dos facturas generadas
// dentro del mismo segundo de reloj.
func generateInvoiceNumber(now time.Time) string {
	suffix := uuid.New().String()[:4]
	return invoiceNumberPrefix + now.Format("20060102-150405") + "-" + suffix
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		WorkOrderID:   inv.WorkOrderID,
		IssueDate:     inv.IssueDate,
		Subtotal:      inv.Subtotal.Decimal(),
		TaxAmount:     inv.TaxAmount.Decimal(),
		Total:         inv.Total.Decimal(),
		IsPaid:        inv.IsPaid,
		PaymentMethod: inv.PaymentMethod,
		Notes:         inv.Notes,
	}
}
