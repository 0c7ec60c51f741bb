package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range f.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _, _ int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
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
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func TestCreateProduct_CategoriaDesconocidaNoEscribe(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.Category{}}
	uc := usecase.NewProductUseCase(productRepo, categoryRepo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Smartphone",
		Price:      decimal.RequireFromString("699"),
		CategoryID: "cat-inexistente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, productRepo.products, "una referencia desconocida no debe escribir nada")
}

func TestCreateProduct_ConCategoriaValida(t *testing.T) {
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"cat-1": {ID: "cat-1", Name: "Electronics"},
	}}
	uc := usecase.NewProductUseCase(productRepo, categoryRepo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:        "Smartphone",
		Description: "Latest model smartphone",
		Price:       decimal.RequireFromString("699"),
		CategoryID:  "cat-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "cat-1", out.CategoryID)
	assert.Len(t, productRepo.products, 1)
}

func TestCreateCategory_NombreDuplicado(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: map[string]*entity.Category{}}
	uc := usecase.NewCategoryUseCase(categoryRepo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, dto.CreateCategoryRequest{Name: "Electronics"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
