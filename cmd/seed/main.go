// seed puebla la base de datos con datos de demostración: categorías,
// productos, inventario por canal (con su asiento inicial de historial) y
// ventas de ejemplo.
//
// Uso: go run ./cmd/seed
// Usa la misma configuración (env vars / .env) que el servidor.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	appinventory "github.com/jhoicas/ecommerce-admin-api/internal/application/inventory"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-admin-api/pkg/config"
	"github.com/jhoicas/ecommerce-admin-api/pkg/logger"
)

type productSeed struct {
	name        string
	description string
	price       string
	category    string
}

type inventorySeed struct {
	product  string
	channel  string
	quantity int
	reorder  int
}

type saleSeed struct {
	product  string
	channel  string
	quantity int
	price    string
	date     string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	inventoryUC := appinventory.NewUseCase(txRunner, inventoryRepo, productRepo)

	// Categorías
	categoryIDs := map[string]string{}
	for _, name := range []string{"Electronics", "Books", "Toys", "Home", "Clothing"} {
		out, err := categoryUC.Create(ctx, dto.CreateCategoryRequest{Name: name})
		if err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		categoryIDs[name] = out.ID
	}

	// Productos
	products := []productSeed{
		{"Smartphone", "Latest model smartphone", "699.0", "Electronics"},
		{"Laptop", "High performance laptop", "999.0", "Electronics"},
		{"Novel", "Bestselling fiction novel", "19.99", "Books"},
		{"Action Figure", "Popular action figure toy", "15.99", "Toys"},
		{"Blender", "Kitchen blender", "49.99", "Home"},
	}
	productIDs := map[string]string{}
	for _, p := range products {
		out, err := productUC.Create(ctx, dto.CreateProductRequest{
			Name:        p.name,
			Description: p.description,
			Price:       decimal.RequireFromString(p.price),
			CategoryID:  categoryIDs[p.category],
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", p.name).Msg("crear producto")
		}
		productIDs[p.name] = out.ID
	}

	// Inventario por canal; el caso de uso asienta el stock inicial en el historial.
	inventories := []inventorySeed{
		{"Smartphone", "Amazon", 50, 10},
		{"Smartphone", "Walmart", 30, 10},
		{"Laptop", "Amazon", 20, 5},
		{"Laptop", "Walmart", 15, 5},
		{"Novel", "Amazon", 100, 20},
		{"Novel", "Walmart", 120, 20},
		{"Action Figure", "Amazon", 60, 10},
		{"Action Figure", "Walmart", 40, 10},
		{"Blender", "Amazon", 10, 3},
		{"Blender", "Walmart", 12, 3},
	}
	for _, inv := range inventories {
		_, err := inventoryUC.Create(ctx, dto.CreateInventoryRequest{
			ProductID:    productIDs[inv.product],
			Channel:      inv.channel,
			Quantity:     inv.quantity,
			ReorderLevel: inv.reorder,
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", inv.product).Str("channel", inv.channel).Msg("crear inventario")
		}
	}

	// Ventas
	sales := []saleSeed{
		{"Smartphone", "Amazon", 2, "699.0", "2025-05-01"},
		{"Smartphone", "Walmart", 1, "679.0", "2025-05-02"},
		{"Smartphone", "Amazon", 3, "699.0", "2025-05-03"},
		{"Laptop", "Amazon", 1, "999.0", "2025-05-04"},
		{"Laptop", "Walmart", 2, "989.0", "2025-05-05"},
		{"Novel", "Walmart", 5, "19.99", "2025-05-06"},
		{"Action Figure", "Amazon", 2, "15.99", "2025-05-07"},
		{"Action Figure", "Walmart", 3, "14.99", "2025-05-08"},
		{"Blender", "Amazon", 1, "49.99", "2025-05-09"},
		{"Blender", "Walmart", 2, "47.99", "2025-05-10"},
		{"Smartphone", "Amazon", 1, "699.0", "2024-12-25"},
	}
	for _, s := range sales {
		saleDate, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			log.Fatal().Err(err).Str("date", s.date).Msg("parsear fecha de venta")
		}
		err = saleRepo.Create(ctx, &entity.Sale{
			ID:        uuid.New().String(),
			ProductID: productIDs[s.product],
			Channel:   s.channel,
			Quantity:  s.quantity,
			Price:     decimal.RequireFromString(s.price),
			SaleDate:  saleDate,
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", s.product).Msg("crear venta")
		}
	}

	log.Info().Msg("base de datos poblada con datos de demostración")
}
