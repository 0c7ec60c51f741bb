package report

import (
	"fmt"
	"time"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
)

// Granularity es el tamaño del bucket temporal para agregar ingresos.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity valida el parámetro group_by. Cualquier valor fuera de
// day|week|month|year es entrada inválida.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("%w: group_by %q (se espera day|week|month|year)", domain.ErrInvalidInput, s)
	}
}

// TruncateToBucket lleva un instante al inicio canónico de su bucket, en UTC.
// Las semanas inician el lunes a las 00:00 (convención ISO, igual que
// date_trunc('week') de PostgreSQL).
func TruncateToBucket(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	switch g {
	case GranularityWeek:
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7 // lunes=0 ... domingo=6
		return day.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // day
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}
