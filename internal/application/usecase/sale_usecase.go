package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// SaleUseCase lectura de ventas con filtros multidimensionales.
// Las ventas son inmutables: no hay update ni delete.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// SaleListInput filtros opcionales de GET /sales; los presentes se componen con AND.
type SaleListInput struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ProductID  string
	CategoryID string
	Channel    string
}

// List devuelve las ventas que cumplen todos los filtros presentes.
func (uc *SaleUseCase) List(ctx context.Context, in SaleListInput) ([]dto.SaleResponse, error) {
	sales, err := uc.repo.List(ctx, repository.SaleFilter{
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		ProductID:  in.ProductID,
		CategoryID: in.CategoryID,
		Channel:    in.Channel,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, dto.SaleToResponse(s))
	}
	return out, nil
}
