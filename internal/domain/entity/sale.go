package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta inmutable: una vez creada no se actualiza ni se borra.
// Price es el precio unitario al momento de la venta (puede diferir del precio actual del producto).
type Sale struct {
	ID        string
	ProductID string
	Channel   string
	Quantity  int
	Price     decimal.Decimal
	SaleDate  time.Time
}

// Revenue devuelve el ingreso de la venta (cantidad × precio unitario).
func (s *Sale) Revenue() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
