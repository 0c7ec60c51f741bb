package entity

// Category representa una categoría de productos. El nombre es único en todo el sistema.
type Category struct {
	ID   string
	Name string
}
