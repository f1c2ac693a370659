package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Abasto-api/internal/domain"
)

// asValidationError extrae el *domain.ValidationError de la cadena de errores,
// si lo hay, para armar mensajes 400 que nombren el campo ofensor.
func asValidationError(err error) (*domain.ValidationError, bool) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// pageParams lee limit/offset del query string con defaults y tope.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
