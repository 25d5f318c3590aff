package api

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler maps use-case errors to HTTP statuses: validation 400,
// not found 404, fiber errors keep their code, anything else 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var verr *app.ValidationError
	var nf *app.NotFoundError
	var fe *fiber.Error
	switch {
	case errors.As(err, &verr):
		status = fiber.StatusBadRequest
	case errors.As(err, &nf):
		status = fiber.StatusNotFound
	case errors.As(err, &fe):
		status = fe.Code
	}

	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}
