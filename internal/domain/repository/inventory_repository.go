package repository

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// InventoryFilter filtros opcionales para listar inventario.
// Campos vacíos no imponen restricción.
type InventoryFilter struct {
	ProductID string
	Channel   string
}

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// GetByID devuelve (nil, nil) cuando la fila no existe. Create devuelve
// domain.ErrDuplicate si ya hay inventario para el par (product_id, channel).
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la tx activa,
	// de modo que lecturas-modificaciones concurrentes sobre la misma fila se serialicen.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	List(ctx context.Context, filter InventoryFilter) ([]*entity.Inventory, error)
	ListLowStock(ctx context.Context) ([]*entity.Inventory, error)
	Delete(ctx context.Context, id string) error
}

// InventoryHistoryRepository define el puerto del historial de ajustes.
// El historial es append-only: no existe operación de actualización ni borrado
// directo (solo la cascada al borrar el inventario padre).
type InventoryHistoryRepository interface {
	Create(ctx context.Context, h *entity.InventoryHistory) error
	ListByInventory(ctx context.Context, inventoryID string) ([]*entity.InventoryHistory, error)
}
