package billing

import (
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/application/dto"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
	"github.com/Uriel-Cruz-Vite/compugestion-api/pkg/logger"
)

// InvoiceUseCase consultas y mutaciones simples sobre facturas existentes.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	log  *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, log: log}
}

// Get obtiene una factura por ID.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List lista facturas ordenadas por fecha de emisión descendente, con filtro
// opcional por estado de pago.
func (uc *InvoiceUseCase) List(in dto.ListInvoicesRequest) ([]*dto.InvoiceResponse, error) {
	in.DefaultPage()
	list, err := uc.repo.List(in.IsPaid, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// SetPaid marca o desmarca una factura como pagada. El fallo de persistencia
// se devuelve al caller; no se traga en silencio.
func (uc *InvoiceUseCase) SetPaid(id string, in dto.SetInvoicePaidRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.SetPaid(id, in.IsPaid, in.PaymentMethod); err != nil {
		return nil, err
	}
	inv.IsPaid = in.IsPaid
	inv.PaymentMethod = in.PaymentMethod
	uc.log.Info().Str("invoice_number", inv.InvoiceNumber).Bool("is_paid", in.IsPaid).Msg("estado de pago actualizado")
	return toInvoiceResponse(inv), nil
}

// Delete elimina una factura.
func (uc *InvoiceUseCase) Delete(id string) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("invoice_number", inv.InvoiceNumber).Msg("factura eliminada")
	return nil
}
