package dto

import (
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// CreateInventoryRequest cuerpo de POST /inventory.
type CreateInventoryRequest struct {
	ProductID    string `json:"product_id"`
	Channel      string `json:"channel"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorder_level"`
}

// UpdateInventoryRequest cuerpo de PUT /inventory/{id}: nueva cantidad
// absoluta y comentario opcional para el historial.
type UpdateInventoryRequest struct {
	Quantity int     `json:"quantity"`
	Comment  *string `json:"comment"`
}

// InventoryResponse representación externa de una fila de inventario.
// LowStock se recalcula en cada lectura (quantity <= reorder_level).
type InventoryResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	Channel      string    `json:"channel"`
	Quantity     int       `json:"quantity"`
	ReorderLevel int       `json:"reorder_level"`
	LowStock     bool      `json:"low_stock"`
	LastUpdated  time.Time `json:"last_updated"`
}

// InventoryToResponse mapea la entidad al DTO de salida.
func InventoryToResponse(i *entity.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:           i.ID,
		ProductID:    i.ProductID,
		Channel:      i.Channel,
		Quantity:     i.Quantity,
		ReorderLevel: i.ReorderLevel,
		LowStock:     i.IsLowStock(),
		LastUpdated:  i.LastUpdated,
	}
}
