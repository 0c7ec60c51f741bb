package dto

import "github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"

// CreateCategoryRequest cuerpo de POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse representación externa de una categoría.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryToResponse mapea la entidad al DTO de salida.
func CategoryToResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
