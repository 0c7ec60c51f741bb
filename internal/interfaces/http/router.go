package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/inventory"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/report"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	SaleUC      *usecase.SaleUseCase
	InventoryUC *inventory.UseCase
	RevenueUC   *report.RevenueUseCase
}

// Router registra las rutas de la API. Las rutas y nombres de parámetros se
// conservan exactamente por compatibilidad con los clientes existentes.
func Router(app *fiber.App, deps RouterDeps) {
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	app.Get("/categories", categoryHandler.List)
	app.Post("/categories", categoryHandler.Create)

	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Post("/products", productHandler.Create)
	app.Get("/products/:id", productHandler.GetByID)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	app.Post("/inventory", inventoryHandler.Create)
	app.Get("/inventory", inventoryHandler.List)
	// Registrar antes de /inventory/:id: Fiber resuelve en orden de registro.
	app.Get("/inventory/stock/low-stock", inventoryHandler.LowStock)
	app.Get("/inventory/:id", inventoryHandler.GetByID)
	app.Put("/inventory/:id", inventoryHandler.Update)

	salesHandler := NewSalesHandler(deps.SaleUC, deps.RevenueUC)
	app.Get("/sales", salesHandler.List)
	app.Get("/sales/revenue", salesHandler.Revenue)
	app.Get("/sales/compare", salesHandler.Compare)
}
