package entity

import "time"

// Inventory representa el stock actual de un producto en un canal de venta.
// Invariante: a lo sumo una fila por par (product_id, channel).
// La cantidad actual vive aquí, nunca se reconstruye desde el historial.
type Inventory struct {
	ID           string
	ProductID    string
	Channel      string
	Quantity     int
	ReorderLevel int
	LastUpdated  time.Time
}

// IsLowStock indica si el stock está en o por debajo del punto de reorden.
// El límite exacto (quantity == reorder_level) cuenta como stock bajo.
func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// InventoryHistory es una entrada del historial de ajustes de inventario.
// Solo se agrega (append-only); únicamente el borrado en cascada del
// inventario padre la elimina.
type InventoryHistory struct {
	ID          string
	InventoryID string
	ChangeQty   int // delta con signo aplicado a la cantidad
	Timestamp   time.Time
	Comment     string // vacío si no se proporcionó
}
