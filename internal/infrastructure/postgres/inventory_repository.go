package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `id, product_id, channel, quantity, reorder_level, last_updated`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste una fila de inventario. El constraint UNIQUE
// (product_id, channel) garantiza a lo sumo una fila por par.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory (id, product_id, channel, quantity, reorder_level, last_updated)
		VALUES ($1, $2, $3, $4, $5, now())`,
		inv.ID, inv.ProductID, inv.Channel, inv.Quantity, inv.ReorderLevel,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de inventario por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.Inventory, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) dentro de
// la tx activa, serializando escritores concurrentes sobre el mismo par
// (producto, canal).
func (r *InventoryRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Inventory, error) {
	return r.getByID(ctx, id, " FOR UPDATE")
}

func (r *InventoryRepo) getByID(ctx context.Context, id, suffix string) (*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE id = $1` + suffix
	var i entity.Inventory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.ProductID, &i.Channel, &i.Quantity, &i.ReorderLevel, &i.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &i, nil
}

// UpdateQuantity fija la cantidad absoluta y refresca last_updated.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventory SET quantity = $2, last_updated = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista inventario con filtros opcionales por producto y canal.
func (r *InventoryRepo) List(ctx context.Context, filter repository.InventoryFilter) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory`
	var conds []string
	var args []any
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		conds = append(conds, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.Channel != "" {
		args = append(args, filter.Channel)
		conds = append(conds, fmt.Sprintf("channel = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY product_id, channel"
	return r.list(ctx, query, args...)
}

// ListLowStock devuelve las filas en o por debajo del punto de reorden.
// Comparación hecha en SQL y recalculada en cada lectura; el límite exacto
// (quantity == reorder_level) está incluido.
func (r *InventoryRepo) ListLowStock(ctx context.Context) ([]*entity.Inventory, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory
		WHERE quantity <= reorder_level ORDER BY product_id, channel`
	return r.list(ctx, query)
}

// Delete elimina una fila de inventario; el historial cae en cascada (FK ON DELETE CASCADE).
func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InventoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Inventory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var i entity.Inventory
		if err := rows.Scan(&i.ID, &i.ProductID, &i.Channel, &i.Quantity, &i.ReorderLevel, &i.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
