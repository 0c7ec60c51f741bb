package report_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/report"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/entity"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// fakeSaleRepo aplica en memoria la misma semántica de filtros que el
// adaptador SQL: AND entre filtros presentes, rango de fechas inclusivo,
// categoría resuelta vía el producto.
type fakeSaleRepo struct {
	sales      []*entity.Sale
	categoryOf map[string]string // productID -> categoryID
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeSaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if filter.StartDate != nil && s.SaleDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.SaleDate.After(*filter.EndDate) {
			continue
		}
		if filter.ProductID != "" && s.ProductID != filter.ProductID {
			continue
		}
		if filter.Channel != "" && s.Channel != filter.Channel {
			continue
		}
		if filter.CategoryID != "" && f.categoryOf[s.ProductID] != filter.CategoryID {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.Before(out[j].SaleDate) })
	return out, nil
}

func sale(productID, channel string, qty int, price string, date string) *entity.Sale {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &entity.Sale{
		ID:        productID + "-" + date,
		ProductID: productID,
		Channel:   channel,
		Quantity:  qty,
		Price:     decimal.RequireFromString(price),
		SaleDate:  d,
	}
}

func TestAggregate_MesUnSoloBucket(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("smartphone", "Amazon", 2, "699", "2025-05-01"),
		sale("smartphone", "Amazon", 3, "699", "2025-05-03"),
	}}
	uc := report.NewRevenueUseCase(repo)

	out, err := uc.Aggregate(context.Background(), report.Filters{}, "month")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2025-05-01", out[0].Period)
	assert.Equal(t, 3495.0, out[0].Revenue)
}

func TestAggregate_GroupByInvalido(t *testing.T) {
	uc := report.NewRevenueUseCase(&fakeSaleRepo{})
	_, err := uc.Aggregate(context.Background(), report.Filters{}, "hour")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAggregate_BucketsOrdenadosAscendente(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("laptop", "Amazon", 1, "999", "2025-05-04"),
		sale("smartphone", "Amazon", 1, "699", "2024-12-25"),
		sale("novel", "Walmart", 5, "19.99", "2025-05-06"),
		sale("smartphone", "Amazon", 2, "699", "2025-05-01"),
	}}
	uc := report.NewRevenueUseCase(repo)

	out, err := uc.Aggregate(context.Background(), report.Filters{}, "day")
	require.NoError(t, err)
	require.Len(t, out, 4)
	for i := 1; i < len(out); i++ {
		assert.Less(t, out[i-1].Period, out[i].Period, "los buckets deben venir en orden ascendente")
	}
	assert.Equal(t, "2024-12-25", out[0].Period)
}

func TestAggregate_SumaPorBucketYFiltroCanal(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("smartphone", "Amazon", 2, "699", "2025-05-01"),
		sale("smartphone", "Walmart", 1, "679", "2025-05-01"),
		sale("smartphone", "Amazon", 3, "699", "2025-05-03"),
	}}
	uc := report.NewRevenueUseCase(repo)

	out, err := uc.Aggregate(context.Background(), report.Filters{Channel: "Amazon"}, "day")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "2025-05-01", out[0].Period)
	assert.Equal(t, 1398.0, out[0].Revenue) // solo la venta de Amazon; Walmart queda fuera
	assert.Equal(t, "2025-05-03", out[1].Period)
	assert.Equal(t, 2097.0, out[1].Revenue)
}

func TestAggregate_FiltroCategoriaViaProducto(t *testing.T) {
	repo := &fakeSaleRepo{
		sales: []*entity.Sale{
			sale("smartphone", "Amazon", 2, "699", "2025-05-01"),
			sale("novel", "Amazon", 5, "19.99", "2025-05-01"),
		},
		categoryOf: map[string]string{"smartphone": "electronics", "novel": "books"},
	}
	uc := report.NewRevenueUseCase(repo)

	out, err := uc.Aggregate(context.Background(), report.Filters{CategoryID: "electronics"}, "day")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1398.0, out[0].Revenue)
}

func TestAggregate_BucketsVaciosSeOmiten(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("smartphone", "Amazon", 1, "699", "2025-05-01"),
		sale("smartphone", "Amazon", 1, "699", "2025-05-10"),
	}}
	uc := report.NewRevenueUseCase(repo)

	out, err := uc.Aggregate(context.Background(), report.Filters{}, "day")
	require.NoError(t, err)
	// Nueve días sin ventas entre ambas fechas: no aparecen rellenos con cero.
	assert.Len(t, out, 2)
}

func TestCompare_SeriesIndependientes(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("smartphone", "Amazon", 2, "699", "2025-05-01"),
		sale("smartphone", "Amazon", 3, "699", "2025-05-03"),
		sale("laptop", "Amazon", 1, "999", "2025-06-04"),
	}}
	uc := report.NewRevenueUseCase(repo)

	mayo := report.DateRange{
		Start: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC),
	}
	junio := report.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}
	out, err := uc.Compare(context.Background(), mayo, junio, report.Filters{})
	require.NoError(t, err)

	require.Len(t, out.Range1, 2)
	assert.Equal(t, "2025-05-01", out.Range1[0].Date)
	assert.Equal(t, "2025-05-03", out.Range1[1].Date)

	require.Len(t, out.Range2, 1)
	assert.Equal(t, "2025-06-04", out.Range2[0].Date)
	assert.Equal(t, 999.0, out.Range2[0].Revenue)

	// Una fecha presente solo en el rango 1 nunca aparece en la serie del rango 2.
	for _, p := range out.Range2 {
		assert.NotEqual(t, "2025-05-01", p.Date)
		assert.NotEqual(t, "2025-05-03", p.Date)
	}
}

func TestCompare_MismosFiltrosNoTemporales(t *testing.T) {
	repo := &fakeSaleRepo{sales: []*entity.Sale{
		sale("smartphone", "Amazon", 2, "699", "2025-05-01"),
		sale("smartphone", "Walmart", 4, "679", "2025-05-01"),
		sale("smartphone", "Walmart", 1, "679", "2025-06-02"),
	}}
	uc := report.NewRevenueUseCase(repo)

	mayo := report.DateRange{
		Start: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
	}
	junio := report.DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	out, err := uc.Compare(context.Background(), mayo, junio, report.Filters{Channel: "Walmart"})
	require.NoError(t, err)

	require.Len(t, out.Range1, 1)
	assert.Equal(t, 2716.0, out.Range1[0].Revenue)
	require.Len(t, out.Range2, 1)
	assert.Equal(t, 679.0, out.Range2[0].Revenue)
}
