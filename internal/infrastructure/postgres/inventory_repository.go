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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para refacciones.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, name, quantity, unit_cost, unit_price, notes, created_at, updated_at`

// Create persiste una nueva refacción.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, quantity, unit_cost, unit_price, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.UnitCost.Decimal(), item.UnitPrice.Decimal(),
		item.Notes, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene una refacción por ID. Devuelve nil, nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	item, err := scanInventoryItem(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return item, nil
}

// Update actualiza una refacción (incluida la cantidad absoluta).
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, quantity = $3, unit_cost = $4, unit_price = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.UnitCost.Decimal(), item.UnitPrice.Decimal(),
		item.Notes, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// List devuelve refacciones ordenadas por nombre; search filtra por subcadena
// insensible a mayúsculas sobre nombre y notas.
func (r *InventoryRepo) List(search string, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items`
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR notes ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// AdjustQuantity suma delta a las existencias en una sola sentencia; la
// condición quantity + delta >= 0 evita la carrera lectura-escritura y deja
// el rechazo por stock insuficiente en manos de la base de datos.
func (r *InventoryRepo) AdjustQuantity(id string, delta int) (*entity.InventoryItem, error) {
	query := `
		UPDATE inventory_items
		SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING ` + inventoryColumns
	item, err := scanInventoryItem(r.q.QueryRow(context.Background(), query, id, delta))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// O la refacción no existe o el ajuste dejaría stock negativo;
			// distinguimos con una lectura adicional.
			existing, getErr := r.GetByID(id)
			if getErr != nil {
				return nil, getErr
			}
			if existing == nil {
				return nil, domain.ErrNotFound
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("adjust inventory quantity: %w", err)
	}
	return item, nil
}

// Delete elimina una refacción por ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var (
		item      entity.InventoryItem
		unitCost  decimal.Decimal
		unitPrice decimal.Decimal
	)
	err := row.Scan(
		&item.ID, &item.Name, &item.Quantity, &unitCost, &unitPrice,
		&item.Notes, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.UnitCost = money.New(unitCost)
	item.UnitPrice = money.New(unitPrice)
	return &item, nil
}
