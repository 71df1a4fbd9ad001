package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/application/usecase"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

// ProductoHandler maneja las peticiones HTTP para Producto.
type ProductoHandler struct {
	uc  *usecase.ProductoUseCase
	log *logger.Logger
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase, log *logger.Logger) *ProductoHandler {
	return &ProductoHandler{uc: uc, log: log.Con("handler", "productos")}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return responderError(c, h.log, err, "error al crear el producto")
	}
	h.log.Info().Str("producto_id", out.ID).Str("nombre", out.Nombre).Msg("producto creado")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return responderError(c, h.log, err, "error al obtener el producto")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return responderError(c, h.log, err, "error al listar los productos")
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar producto
// @Description  Actualiza los campos enviados. El stock no se modifica por
//               aquí; se maneja vía entradas y salidas.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(id, in)
	if err != nil {
		return responderError(c, h.log, err, "error al actualizar el producto")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Eliminar(id); err != nil {
		return responderError(c, h.log, err, "error al eliminar el producto")
	}
	h.log.Info().Str("producto_id", id).Msg("producto eliminado")
	return c.SendStatus(fiber.StatusNoContent)
}
