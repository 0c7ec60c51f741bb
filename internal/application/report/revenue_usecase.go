package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/report"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
)

// RevenueUseCase agrega ingresos (Σ cantidad × precio) sobre ventas, por
// bucket temporal y con filtros multidimensionales. Solo lectura, sin efectos
// secundarios: los fallos se limitan a validación de entrada y propagación de
// errores del almacén.
type RevenueUseCase struct {
	saleRepo repository.SaleRepository
}

// NewRevenueUseCase construye el caso de uso.
func NewRevenueUseCase(saleRepo repository.SaleRepository) *RevenueUseCase {
	return &RevenueUseCase{saleRepo: saleRepo}
}

// Filters filtros de agregación; los presentes se componen con AND y los
// ausentes no restringen. StartDate y EndDate son inclusivos.
type Filters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ProductID  string
	CategoryID string
	Channel    string
}

// DateRange rango de fechas cerrado para la comparación.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (f Filters) toSaleFilter() repository.SaleFilter {
	return repository.SaleFilter{
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		ProductID:  f.ProductID,
		CategoryID: f.CategoryID,
		Channel:    f.Channel,
	}
}

// Aggregate calcula el ingreso por bucket para la granularidad pedida
// (day|week|month|year; otro valor es domain.ErrInvalidInput). Cada venta se
// trunca al inicio de su bucket, se suma cantidad × precio con aritmética
// decimal y se emite un punto por bucket no vacío, ordenado ascendente por
// inicio de bucket. Los buckets sin ventas se omiten, no se rellenan con cero.
func (uc *RevenueUseCase) Aggregate(ctx context.Context, filters Filters, groupBy string) ([]dto.RevenuePoint, error) {
	granularity, err := report.ParseGranularity(groupBy)
	if err != nil {
		return nil, err
	}
	buckets, err := uc.bucketize(ctx, filters, granularity)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevenuePoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.RevenuePoint{
			Period:  b.start.Format("2006-01-02"),
			Revenue: b.total.InexactFloat64(),
		})
	}
	return out, nil
}

// Compare calcula de forma independiente la serie diaria de cada rango bajo
// los mismos filtros no temporales. Las series no se alinean: cada una
// contiene solo los días donde tiene datos.
func (uc *RevenueUseCase) Compare(ctx context.Context, range1, range2 DateRange, filters Filters) (*dto.CompareResponse, error) {
	series1, err := uc.dailySeries(ctx, range1, filters)
	if err != nil {
		return nil, err
	}
	series2, err := uc.dailySeries(ctx, range2, filters)
	if err != nil {
		return nil, err
	}
	return &dto.CompareResponse{Range1: series1, Range2: series2}, nil
}

func (uc *RevenueUseCase) dailySeries(ctx context.Context, r DateRange, filters Filters) ([]dto.ComparePoint, error) {
	f := filters
	f.StartDate = &r.Start
	f.EndDate = &r.End
	buckets, err := uc.bucketize(ctx, f, report.GranularityDay)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComparePoint, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.ComparePoint{
			Date:    b.start.Format("2006-01-02"),
			Revenue: b.total.InexactFloat64(),
		})
	}
	return out, nil
}

type bucket struct {
	start time.Time
	total decimal.Decimal
}

// bucketize trae las ventas filtradas y las acumula por inicio de bucket.
func (uc *RevenueUseCase) bucketize(ctx context.Context, filters Filters, g report.Granularity) ([]bucket, error) {
	sales, err := uc.saleRepo.List(ctx, filters.toSaleFilter())
	if err != nil {
		return nil, err
	}
	totals := make(map[time.Time]decimal.Decimal)
	for _, s := range sales {
		start := report.TruncateToBucket(s.SaleDate, g)
		totals[start] = totals[start].Add(s.Revenue())
	}
	buckets := make([]bucket, 0, len(totals))
	for start, total := range totals {
		buckets = append(buckets, bucket{start: start, total: total})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].start.Before(buckets[j].start) })
	return buckets, nil
}
