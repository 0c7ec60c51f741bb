package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/inventory"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// fakeInventoryRepo replica en memoria la semántica del adaptador SQL,
// incluido el constraint único sobre (product_id, channel).
type fakeInventoryRepo struct {
	rows map[string]*entity.Inventory
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{rows: map[string]*entity.Inventory{}}
}

func (f *fakeInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	for _, r := range f.rows {
		if r.ProductID == inv.ProductID && r.Channel == inv.Channel {
			return domain.ErrDuplicate
		}
	}
	cp := *inv
	f.rows[inv.ID] = &cp
	return nil
}

func (f *fakeInventoryRepo) GetByID(_ context.Context, id string) (*entity.Inventory, error) {
	if r, ok := f.rows[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Inventory, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeInventoryRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	r, ok := f.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Quantity = quantity
	r.LastUpdated = time.Now()
	return nil
}

func (f *fakeInventoryRepo) List(_ context.Context, filter repository.InventoryFilter) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, r := range f.rows {
		if filter.ProductID != "" && r.ProductID != filter.ProductID {
			continue
		}
		if filter.Channel != "" && r.Channel != filter.Channel {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeInventoryRepo) ListLowStock(_ context.Context) ([]*entity.Inventory, error) {
	var out []*entity.Inventory
	for _, r := range f.rows {
		if r.Quantity <= r.ReorderLevel {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeHistoryRepo struct {
	entries []*entity.InventoryHistory
}

func (f *fakeHistoryRepo) Create(_ context.Context, h *entity.InventoryHistory) error {
	cp := *h
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeHistoryRepo) ListByInventory(_ context.Context, inventoryID string) ([]*entity.InventoryHistory, error) {
	var out []*entity.InventoryHistory
	for _, h := range f.entries {
		if h.InventoryID == inventoryID {
			out = append(out, h)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes; la atomicidad
// real la cubre el adaptador PostgreSQL.
type fakeTxRunner struct {
	invRepo  *fakeInventoryRepo
	histRepo *fakeHistoryRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	invRepo repository.InventoryRepository,
	histRepo repository.InventoryHistoryRepository,
) error) error {
	return fn(f.invRepo, f.histRepo)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func newUseCase() (*inventory.UseCase, *fakeInventoryRepo, *fakeHistoryRepo, *fakeProductRepo) {
	invRepo := newFakeInventoryRepo()
	histRepo := &fakeHistoryRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Smartphone", Price: decimal.RequireFromString("699"), CategoryID: "cat-1"},
	}}
	uc := inventory.NewUseCase(&fakeTxRunner{invRepo: invRepo, histRepo: histRepo}, invRepo, productRepo)
	return uc, invRepo, histRepo, productRepo
}

func TestCreate_AsientaStockInicialEnHistorial(t *testing.T) {
	uc, _, histRepo, _ := newUseCase()

	out, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID: "prod-1", Channel: "Amazon", Quantity: 50, ReorderLevel: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, out.Quantity)
	assert.False(t, out.LowStock)

	require.Len(t, histRepo.entries, 1)
	assert.Equal(t, out.ID, histRepo.entries[0].InventoryID)
	assert.Equal(t, 50, histRepo.entries[0].ChangeQty)
	assert.Equal(t, inventory.InitialStockComment, histRepo.entries[0].Comment)
}

func TestCreate_ProductoDesconocidoNoEscribeNada(t *testing.T) {
	uc, invRepo, histRepo, _ := newUseCase()

	_, err := uc.Create(context.Background(), dto.CreateInventoryRequest{
		ProductID: "prod-inexistente", Channel: "Amazon", Quantity: 50, ReorderLevel: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, invRepo.rows)
	assert.Empty(t, histRepo.entries)
}

func TestCreate_ParProductoCanalDuplicado(t *testing.T) {
	uc, _, _, _ := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateInventoryRequest{
		ProductID: "prod-1", Channel: "Amazon", Quantity: 50, ReorderLevel: 10,
	})
	require.NoError(t, err)

	// Mismo par (producto, canal): siempre conflicto.
	_, err = uc.Create(ctx, dto.CreateInventoryRequest{
		ProductID: "prod-1", Channel: "Amazon", Quantity: 5, ReorderLevel: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Otro canal para el mismo producto sí es válido.
	_, err = uc.Create(ctx, dto.CreateInventoryRequest{
		ProductID: "prod-1", Channel: "Walmart", Quantity: 30, ReorderLevel: 10,
	})
	assert.NoError(t, err)
}

func TestUpdateStock_AsientaDeltaNegativo(t *testing.T) {
	uc, _, histRepo, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateInventoryRequest{
		ProductID: "prod-1", Channel: "Amazon", Quantity: 50, ReorderLevel: 10,
	})
	require.NoError(t, err)

	comment := "ajuste por conteo físico"
	out, err := uc.UpdateStock(ctx, created.ID, dto.UpdateInventoryRequest{Quantity: 45, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, 45, out.Quantity)

	// Exactamente una entrada nueva además del stock inicial, con el delta con signo.
	require.Len(t, histRepo.entries, 2)
	last := histRepo.entries[1]
	assert.Equal(t, created.ID, last.InventoryID)
	assert.Equal(t, -5, last.ChangeQty)
	assert.Equal(t, comment, last.Comment)
}

func TestUpdateStock_InventarioInexistente(t *testing.T) {
	uc, _, _, _ := newUseCase()
	_, err := uc.UpdateStock(context.Background(), "no-existe", dto.UpdateInventoryRequest{Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStock_IncluyeLimiteExacto(t *testing.T) {
	uc, _, _, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateInventoryRequest{
		ProductID: "prod-1", Channel: "Amazon", Quantity: 50, ReorderLevel: 10,
	})
	require.NoError(t, err)

	// Por encima del punto de reorden: no aparece.
	out, err := uc.LowStock(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)

	// Exactamente en el punto de reorden: debe aparecer.
	_, err = uc.UpdateStock(ctx, created.ID, dto.UpdateInventoryRequest{Quantity: 10})
	require.NoError(t, err)
	out, err = uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, created.ID, out[0].ID)
	assert.True(t, out[0].LowStock)
}
