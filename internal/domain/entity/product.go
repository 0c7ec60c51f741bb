package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Siempre pertenece a una categoría existente.
type Product struct {
	ID          string
	Name        string
	Description string // vacío si no se proporcionó
	Price       decimal.Decimal
	CategoryID  string
}
