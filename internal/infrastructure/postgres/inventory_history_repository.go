package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo implementación append-only del historial de inventario
// sobre PostgreSQL (usable con pool o tx). No hay UPDATE ni DELETE: solo la
// cascada al borrar el inventario padre elimina entradas.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Create asienta una entrada de historial con su delta con signo.
func (r *InventoryHistoryRepo) Create(ctx context.Context, h *entity.InventoryHistory) error {
	comment := (*string)(nil)
	if h.Comment != "" {
		comment = &h.Comment
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_history (id, inventory_id, change_qty, timestamp, comment)
		VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.InventoryID, h.ChangeQty, h.Timestamp, comment,
	)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}

// ListByInventory devuelve el historial de una fila de inventario en orden cronológico.
func (r *InventoryHistoryRepo) ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryHistory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, inventory_id, change_qty, timestamp, comment
		FROM inventory_history WHERE inventory_id = $1 ORDER BY timestamp`,
		inventoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryHistory
	for rows.Next() {
		var h entity.InventoryHistory
		var comment *string
		if err := rows.Scan(&h.ID, &h.InventoryID, &h.ChangeQty, &h.Timestamp, &comment); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		if comment != nil {
			h.Comment = *comment
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
