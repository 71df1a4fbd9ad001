// Package http expone la API del dashboard sobre Fiber.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

// responderError traduce errores de dominio a respuestas HTTP. Los mensajes de
// validación y de stock insuficiente viajan tal cual (la UI los muestra al
// usuario); el resto se responde con un mensaje genérico y el detalle va al log.
func responderError(c *fiber.Ctx, log *logger.Logger, err error, mensajeGenerico string) error {
	var validacion *domain.ValidacionError
	if errors.As(err, &validacion) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validacion.Mensaje})
	}
	if errors.Is(err, domain.ErrInsufficientStock) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	log.Error().Err(err).Str("ruta", c.Path()).Msg(mensajeGenerico)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: mensajeGenerico})
}
