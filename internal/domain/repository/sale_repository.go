package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// SaleFilter filtros opcionales de ventas; los presentes se componen con AND.
// StartDate y EndDate son inclusivos. CategoryID filtra vía la categoría del
// producto (join a products).
type SaleFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ProductID  string
	CategoryID string
	Channel    string
}

// SaleRepository define el puerto de persistencia para Sale (DIP).
// Las ventas son inmutables: solo Create y lecturas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
}
