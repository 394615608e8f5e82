package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/entity"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/money"
	"github.com/Uriel-Cruz-Vite/compugestion-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepo)(nil)

// WorkOrderRepo implementación de WorkOrderRepository (usable con pool o tx).
type WorkOrderRepo struct {
	q Querier
}

// NewWorkOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWorkOrderRepository(q Querier) *WorkOrderRepo {
	return &WorkOrderRepo{q: q}
}

const workOrderColumns = `id, customer_name, device_description, problem_description, status, estimated_cost, created_at, updated_at`

// Create persiste una orden de trabajo nueva.
func (r *WorkOrderRepo) Create(order *entity.WorkOrder) error {
	query := `
		INSERT INTO work_orders (id, customer_name, device_description, problem_description, status, estimated_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerName, order.DeviceDescription, order.ProblemDescription,
		order.Status, order.EstimatedCost.Decimal(), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID. Devuelve nil, nil si no existe.
func (r *WorkOrderRepo) GetByID(id string) (*entity.WorkOrder, error) {
	query := `SELECT ` + workOrderColumns + ` FROM work_orders WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	order, err := scanWorkOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order by id: %w", err)
	}
	return order, nil
}

// Update actualiza todos los campos mutables de la orden.
func (r *WorkOrderRepo) Update(order *entity.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET customer_name = $2, device_description = $3, problem_description = $4,
		    status = $5, estimated_cost = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerName, order.DeviceDescription, order.ProblemDescription,
		order.Status, order.EstimatedCost.Decimal(), order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update work order: %w", err)
	}
	return nil
}

// Filter devuelve las órdenes que cumplen los criterios estructurados
// (combinados con AND), ordenadas por fecha de creación descendente.
func (r *WorkOrderRepo) Filter(filter repository.WorkOrderFilter) ([]*entity.WorkOrder, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.MinDate != nil {
		args = append(args, *filter.MinDate)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.MaxDate != nil {
		args = append(args, *filter.MaxDate)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}

	query := `SELECT ` + workOrderColumns + ` FROM work_orders`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter work orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.WorkOrder
	for rows.Next() {
		order, err := scanWorkOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}

// Delete elimina una orden por ID. Las facturas vinculadas quedan con
// work_order_id NULL (ON DELETE SET NULL).
func (r *WorkOrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work order: %w", err)
	}
	return nil
}

// scanWorkOrder mapea una fila a la entidad. El estado pasa por el parse
// estricto: un valor corrupto en la base es un error, no un fallback.
func scanWorkOrder(row pgx.Row) (*entity.WorkOrder, error) {
	var (
		o         entity.WorkOrder
		rawStatus string
		cost      decimal.Decimal
		updatedAt *time.Time
	)
	if err := row.Scan(&o.ID, &o.CustomerName, &o.DeviceDescription, &o.ProblemDescription,
		&rawStatus, &cost, &o.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	status, err := entity.ParseWorkOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	o.Status = status
	o.EstimatedCost = money.New(cost)
	o.UpdatedAt = updatedAt
	return &o, nil
}
