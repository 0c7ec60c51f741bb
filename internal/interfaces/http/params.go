package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Formatos ISO-8601 aceptados en parámetros de fecha, del más al menos específico.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q (se espera ISO-8601)", value)
}

// optionalTimeQuery lee un parámetro de fecha opcional; devuelve nil si está ausente.
func optionalTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTime(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}

// requiredTimeQuery lee un parámetro de fecha obligatorio.
func requiredTimeQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s es requerido", name)
	}
	t, err := parseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
