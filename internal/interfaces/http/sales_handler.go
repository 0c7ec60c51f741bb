package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/report"
	"github.com/jhoicas/ecommerce-admin-api/internal/application/usecase"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// SalesHandler maneja las peticiones HTTP de ventas y reportes de ingresos.
type SalesHandler struct {
	saleUC    *usecase.SaleUseCase
	revenueUC *report.RevenueUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(saleUC *usecase.SaleUseCase, revenueUC *report.RevenueUseCase) *SalesHandler {
	return &SalesHandler{saleUC: saleUC, revenueUC: revenueUC}
}

// List godoc
// @Summary      Listar ventas con filtros
// @Tags         sales
// @Produce      json
// @Param        start_date   query  string  false  "Fecha inicial inclusiva (ISO-8601)"
// @Param        end_date     query  string  false  "Fecha final inclusiva (ISO-8601)"
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        category_id  query  string  false  "Filtrar por categoría del producto"
// @Param        channel      query  string  false  "Filtrar por canal"
// @Success      200  {array}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	start, err := optionalTimeQuery(c, "start_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	end, err := optionalTimeQuery(c, "end_date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.saleUC.List(c.Context(), usecase.SaleListInput{
		StartDate:  start,
		EndDate:    end,
		ProductID:  c.Query("product_id"),
		CategoryID: c.Query("category_id"),
		Channel:    c.Query("channel"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Revenue godoc
// @Summary      Ingresos agregados por bucket temporal
// @Description  Σ(cantidad × precio) por día, semana, mes o año; buckets vacíos se omiten.
// @Tags         sales
// @Produce      json
// @Param        start_date   query  string  false  "Fecha inicial inclusiva (ISO-8601)"
// @Param        end_date     query  string  false  "Fecha final inclusiva (ISO-8601)"
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        category_id  query  string  false  "Filtrar por categoría del producto"
// @Param        channel      query  string  false  "Filtrar por canal"
// @Param        group_by     query  string  false  "day|week|month|year"  default(day)
// @Success      200  {array}  dto.RevenuePoint
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /sales/revenue [get]
func (h *SalesHandler) Revenue(c *fiber.Ctx) error {
	filters, err := h.parseFilters(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	groupBy := c.Query("group_by", "day")
	out, err := h.revenueUC.Aggregate(c.Context(), filters, groupBy)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Compare godoc
// @Summary      Comparar ingresos diarios de dos rangos de fechas
// @Description  Series independientes por rango, bajo los mismos filtros no temporales; sin alineación de buckets.
// @Tags         sales
// @Produce      json
// @Param        start1       query  string  true   "Inicio del rango 1 (ISO-8601)"
// @Param        end1         query  string  true   "Fin del rango 1 (ISO-8601)"
// @Param        start2       query  string  true   "Inicio del rango 2 (ISO-8601)"
// @Param        end2         query  string  true   "Fin del rango 2 (ISO-8601)"
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        category_id  query  string  false  "Filtrar por categoría del producto"
// @Param        channel      query  string  false  "Filtrar por canal"
// @Success      200  {object}  dto.CompareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /sales/compare [get]
func (h *SalesHandler) Compare(c *fiber.Ctx) error {
	var ranges [2]report.DateRange
	for i, names := range [][2]string{{"start1", "end1"}, {"start2", "end2"}} {
		start, err := requiredTimeQuery(c, names[0])
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		end, err := requiredTimeQuery(c, names[1])
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		ranges[i] = report.DateRange{Start: start, End: end}
	}
	filters := report.Filters{
		ProductID:  c.Query("product_id"),
		CategoryID: c.Query("category_id"),
		Channel:    c.Query("channel"),
	}
	out, err := h.revenueUC.Compare(c.Context(), ranges[0], ranges[1], filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func (h *SalesHandler) parseFilters(c *fiber.Ctx) (report.Filters, error) {
	start, err := optionalTimeQuery(c, "start_date")
	if err != nil {
		return report.Filters{}, err
	}
	end, err := optionalTimeQuery(c, "end_date")
	if err != nil {
		return report.Filters{}, err
	}
	return report.Filters{
		StartDate:  start,
		EndDate:    end,
		ProductID:  c.Query("product_id"),
		CategoryID: c.Query("category_id"),
		Channel:    c.Query("channel"),
	}, nil
}
