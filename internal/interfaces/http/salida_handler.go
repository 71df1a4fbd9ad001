package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/application/movimientos"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

// SalidaHandler maneja las peticiones HTTP de salidas de inventario.
type SalidaHandler struct {
	uc      *movimientos.UseCase
	salidas repository.SalidaRepository
	log     *logger.Logger
}

// NewSalidaHandler construye el handler.
func NewSalidaHandler(uc *movimientos.UseCase, salidas repository.SalidaRepository, log *logger.Logger) *SalidaHandler {
	return &SalidaHandler{uc: uc, salidas: salidas, log: log.Con("handler", "salidas")}
}

// Registrar godoc
// @Summary      Registrar salida de stock
// @Description  Valida que el stock del producto cubra la cantidad; si no,
//               responde 409 con el disponible y lo solicitado.
// @Tags         salidas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarSalidaRequest  true  "productoId, cantidad, fecha, motivo, cliente"
// @Success      201   {object}  dto.SalidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/salidas [post]
func (h *SalidaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarSalidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha := in.Fecha
	if fecha.EsCero() {
		fecha = fechas.Hoy()
	}
	salida, err := h.uc.RegistrarSalida(c.Context(), movimientos.SalidaInput{
		ProductoID: in.ProductoID,
		Cantidad:   in.Cantidad,
		Fecha:      fecha,
		Motivo:     in.Motivo,
		Cliente:    in.Cliente,
	})
	if err != nil {
		return responderError(c, h.log, err, "error al registrar la salida")
	}
	h.log.Info().Str("salida_id", salida.ID).Str("producto_id", salida.ProductoID).Str("motivo", salida.Motivo).Msg("salida registrada")
	return c.Status(fiber.StatusCreated).JSON(dto.ASalidaResponse(salida))
}

// Listar godoc
// @Summary      Listar salidas
// @Tags         salidas
// @Produce      json
// @Success      200  {array}  dto.SalidaResponse
// @Router       /api/salidas [get]
func (h *SalidaHandler) Listar(c *fiber.Ctx) error {
	lista, err := h.salidas.Listar()
	if err != nil {
		return responderError(c, h.log, err, "error al listar las salidas")
	}
	out := make([]dto.SalidaResponse, 0, len(lista))
	for _, s := range lista {
		out = append(out, *dto.ASalidaResponse(s))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida por ID
// @Tags         salidas
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.SalidaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salidas/{id} [get]
func (h *SalidaHandler) GetByID(c *fiber.Ctx) error {
	salida, err := h.salidas.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, h.log, err, "error al obtener la salida")
	}
	if salida == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
	}
	return c.JSON(dto.ASalidaResponse(salida))
}

// Eliminar godoc
// @Summary      Eliminar salida
// @Description  Revierte la salida: borra el registro y devuelve su cantidad
//               al stock del producto.
// @Tags         salidas
// @Param        id  path  string  true  "ID de la salida"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salidas/{id} [delete]
func (h *SalidaHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.EliminarSalida(c.Context(), id); err != nil {
		return responderError(c, h.log, err, "error al eliminar la salida")
	}
	h.log.Info().Str("salida_id", id).Msg("salida eliminada")
	return c.SendStatus(fiber.StatusNoContent)
}
