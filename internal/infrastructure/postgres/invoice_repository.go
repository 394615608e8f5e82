package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, invoice_number, work_order_id, issue_date, subtotal, tax_amount, total, is_paid, payment_method, notes, created_at, updated_at`

// Create persiste una factura nueva.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, invoice_number, work_order_id, issue_date, subtotal, tax_amount, total, is_paid, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.InvoiceNumber, invoice.WorkOrderID, invoice.IssueDate,
		invoice.Subtotal.Decimal(), invoice.TaxAmount.Decimal(), invoice.Total.Decimal(),
		invoice.IsPaid, invoice.PaymentMethod, nullIfEmpty(invoice.Notes),
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve nil, nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	invoice, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return invoice, nil
}

// List devuelve facturas ordenadas por fecha de emisión descendente, con
// filtro opcional por estado de pago.
func (r *InvoiceRepo) List(isPaid *bool, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []any{}
	if isPaid != nil {
		args = append(args, *isPaid)
		query += ` WHERE is_paid = $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY issue_date DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, invoice)
	}
	return list, rows.Err()
}

// SetPaid actualiza el estado de pago y el método de pago.
func (r *InvoiceRepo) SetPaid(id string, isPaid bool, paymentMethod *string) error {
	query := `UPDATE invoices SET is_paid = $2, payment_method = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, isPaid, paymentMethod)
	if err != nil {
		return fmt.Errorf("set invoice paid: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv                        entity.Invoice
		subtotal, taxAmount, total decimal.Decimal
		notes                      *string
	)
	if err := row.Scan(&inv.ID, &inv.InvoiceNumber, &inv.WorkOrderID, &inv.IssueDate,
		&subtotal, &taxAmount, &total, &inv.IsPaid, &inv.PaymentMethod, &notes,
		&inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return nil, err
	}
	inv.Subtotal = money.New(subtotal)
	inv.TaxAmount = money.New(taxAmount)
	inv.Total = money.New(total)
	if notes != nil {
		inv.Notes = *notes
	}
	return &inv, nil
}
