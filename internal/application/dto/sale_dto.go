package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
)

// SaleResponse representación externa de una venta.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Channel   string          `json:"channel"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	SaleDate  time.Time       `json:"sale_date"`
}

// SaleToResponse mapea la entidad al DTO de salida.
func SaleToResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Channel:   s.Channel,
		Quantity:  s.Quantity,
		Price:     s.Price,
		SaleDate:  s.SaleDate,
	}
}

// RevenuePoint un bucket no vacío de ingresos: fecha de inicio del período
// (YYYY-MM-DD) e ingreso total del bucket.
// El ingreso se expone como float64; para liquidaciones contables no debe
// asumirse precisión decimal exacta.
type RevenuePoint struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

// ComparePoint igual que RevenuePoint pero con clave "date", formato que
// conserva la comparación de rangos del API original.
type ComparePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// CompareResponse series diarias independientes de dos rangos de fechas.
// No se alinean ni se rellenan con ceros: cada serie trae solo sus buckets con datos.
type CompareResponse struct {
	Range1 []ComparePoint `json:"range1"`
	Range2 []ComparePoint `json:"range2"`
}
