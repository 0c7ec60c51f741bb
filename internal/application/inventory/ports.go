package inventory

import (
	"context"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el libro de
// inventario: cantidad e historial se confirman o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error) error
}
