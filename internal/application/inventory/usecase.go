package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// InitialStockComment comentario del asiento de historial que acompaña al alta de inventario.
const InitialStockComment = "Initial stock"

// UseCase libro de inventario: toda mutación de cantidad produce exactamente
// una entrada de historial cuyo change_qty es el delta con signo aplicado.
// El historial es solo auditoría; la cantidad vigente vive en la fila de inventario.
type UseCase struct {
	txRunner    TxRunner
	invRepo     repository.InventoryRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, invRepo repository.InventoryRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{txRunner: txRunner, invRepo: invRepo, productRepo: productRepo}
}

// Create da de alta inventario para un par (producto, canal). El producto debe
// existir (referencia desconocida no escribe nada) y el par debe estar libre
// (domain.ErrDuplicate si ya hay fila). El stock inicial también queda asentado
// en el historial, con change_qty igual a la cantidad inicial.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ProductID == "" || in.Channel == "" || in.Quantity < 0 || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}

	inv := &entity.Inventory{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		Channel:      in.Channel,
		Quantity:     in.Quantity,
		ReorderLevel: in.ReorderLevel,
		LastUpdated:  time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		if err := invRepo.Create(ctx, inv); err != nil {
			return err
		}
		return histRepo.Create(ctx, &entity.InventoryHistory{
			ID:          uuid.New().String(),
			InventoryID: inv.ID,
			ChangeQty:   in.Quantity,
			Timestamp:   time.Now(),
			Comment:     InitialStockComment,
		})
	})
	if err != nil {
		return nil, err
	}
	out := dto.InventoryToResponse(inv)
	return &out, nil
}

// UpdateStock fija la nueva cantidad absoluta y asienta el delta en el
// historial. Todo ocurre en una transacción con la fila bloqueada
// (SELECT FOR UPDATE), de modo que escritores concurrentes sobre el mismo
// (producto, canal) se serializan y ningún delta se pierde.
func (uc *UseCase) UpdateStock(ctx context.Context, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Inventory
	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		inv, err := invRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		delta := in.Quantity - inv.Quantity
		if err := invRepo.UpdateQuantity(ctx, id, in.Quantity); err != nil {
			return err
		}
		comment := ""
		if in.Comment != nil {
			comment = *in.Comment
		}
		if err := histRepo.Create(ctx, &entity.InventoryHistory{
			ID:          uuid.New().String(),
			InventoryID: id,
			ChangeQty:   delta,
			Timestamp:   time.Now(),
			Comment:     comment,
		}); err != nil {
			return err
		}
		inv.Quantity = in.Quantity
		inv.LastUpdated = time.Now()
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.InventoryToResponse(updated)
	return &out, nil
}

// GetByID obtiene una fila de inventario. Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	out := dto.InventoryToResponse(inv)
	return &out, nil
}

// List lista inventario, opcionalmente filtrado por producto y/o canal.
func (uc *UseCase) List(ctx context.Context, productID, channel string) ([]dto.InventoryResponse, error) {
	items, err := uc.invRepo.List(ctx, repository.InventoryFilter{ProductID: productID, Channel: channel})
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

// LowStock devuelve las filas con quantity <= reorder_level. Se recalcula en
// cada lectura; el límite exacto (quantity == reorder_level) está incluido.
func (uc *UseCase) LowStock(ctx context.Context) ([]dto.InventoryResponse, error) {
	items, err := uc.invRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func toResponses(items []*entity.Inventory) []dto.InventoryResponse {
	out := make([]dto.InventoryResponse, 0, len(items))
	for _, i := range items {
		out = append(out, dto.InventoryToResponse(i))
	}
	return out
}
