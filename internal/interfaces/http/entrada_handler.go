package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/application/movimientos"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

// EntradaHandler maneja las peticiones HTTP de entradas de inventario.
type EntradaHandler struct {
	uc       *movimientos.UseCase
	entradas repository.EntradaRepository
	log      *logger.Logger
}

// NewEntradaHandler construye el handler. El repositorio se usa para las
// lecturas; las escrituras pasan por el caso de uso.
func NewEntradaHandler(uc *movimientos.UseCase, entradas repository.EntradaRepository, log *logger.Logger) *EntradaHandler {
	return &EntradaHandler{uc: uc, entradas: entradas, log: log.Con("handler", "entradas")}
}

// Registrar godoc
// @Summary      Registrar entrada de stock
// @Tags         entradas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEntradaRequest  true  "productoId, cantidad, fecha, proveedor, precioCompra"
// @Success      201   {object}  dto.EntradaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *EntradaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha := in.Fecha
	if fecha.EsCero() {
		fecha = fechas.Hoy()
	}
	entrada, err := h.uc.RegistrarEntrada(c.Context(), movimientos.EntradaInput{
		ProductoID:   in.ProductoID,
		Cantidad:     in.Cantidad,
		Fecha:        fecha,
		Proveedor:    in.Proveedor,
		PrecioCompra: in.PrecioCompra,
	})
	if err != nil {
		return responderError(c, h.log, err, "error al registrar la entrada")
	}
	h.log.Info().Str("entrada_id", entrada.ID).Str("producto_id", entrada.ProductoID).Msg("entrada registrada")
	return c.Status(fiber.StatusCreated).JSON(dto.AEntradaResponse(entrada))
}

// Listar godoc
// @Summary      Listar entradas
// @Tags         entradas
// @Produce      json
// @Success      200  {array}  dto.EntradaResponse
// @Router       /api/entradas [get]
func (h *EntradaHandler) Listar(c *fiber.Ctx) error {
	lista, err := h.entradas.Listar()
	if err != nil {
		return responderError(c, h.log, err, "error al listar las entradas")
	}
	out := make([]dto.EntradaResponse, 0, len(lista))
	for _, e := range lista {
		out = append(out, *dto.AEntradaResponse(e))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada por ID
// @Tags         entradas
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.EntradaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [get]
func (h *EntradaHandler) GetByID(c *fiber.Ctx) error {
	entrada, err := h.entradas.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, h.log, err, "error al obtener la entrada")
	}
	if entrada == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(dto.AEntradaResponse(entrada))
}

// Eliminar godoc
// @Summary      Eliminar entrada
// @Description  Revierte la entrada: borra el registro y resta su cantidad del
//               stock del producto. Se rechaza si dejaría el stock en negativo.
// @Tags         entradas
// @Param        id  path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/entradas/{id} [delete]
func (h *EntradaHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.EliminarEntrada(c.Context(), id); err != nil {
		return responderError(c, h.log, err, "error al eliminar la entrada")
	}
	h.log.Info().Str("entrada_id", id).Msg("entrada eliminada")
	return c.SendStatus(fiber.StatusNoContent)
}
