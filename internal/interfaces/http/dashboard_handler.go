package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruteria-api/internal/application/analytics"
	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/application/reportes"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

// DashboardHandler maneja las vistas de lectura: resumen, caducidad y reporte.
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	caducidadUC *analytics.CaducidadUseCase
	reporteUC   *reportes.ReporteUseCase
	log         *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(
	dashboardUC *analytics.DashboardUseCase,
	caducidadUC *analytics.CaducidadUseCase,
	reporteUC *reportes.ReporteUseCase,
	log *logger.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		caducidadUC: caducidadUC,
		reporteUC:   reporteUC,
		log:         log.Con("handler", "dashboard"),
	}
}

// fechaDeCorte lee el query param "fecha" (YYYY-MM-DD); sin él usa el día
// actual. Permite consultar la clasificación de caducidad a una fecha dada.
func fechaDeCorte(c *fiber.Ctx) (fechas.Fecha, error) {
	if s := c.Query("fecha"); s != "" {
		return fechas.Parse(s)
	}
	return fechas.Hoy(), nil
}

// Resumen godoc
// @Summary      Resumen del dashboard
// @Description  Stock total, productos por caducar y últimos 5 movimientos de
//               cada tipo (el más reciente primero).
// @Tags         dashboard
// @Produce      json
// @Param        fecha  query  string  false  "Fecha de corte YYYY-MM-DD (default hoy)"
// @Success      200  {object}  dto.ResumenDashboardDTO
// @Router       /api/dashboard/resumen [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	hoy, err := fechaDeCorte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.dashboardUC.GetResumen(c.Context(), hoy)
	if err != nil {
		return responderError(c, h.log, err, "error al construir el resumen")
	}
	return c.JSON(out)
}

// Caducidad godoc
// @Summary      Control de caducidad
// @Description  Todos los productos agrupados por estado: vigentes, por
//               caducar (7 días o menos) y caducados.
// @Tags         dashboard
// @Produce      json
// @Param        fecha  query  string  false  "Fecha de corte YYYY-MM-DD (default hoy)"
// @Success      200  {object}  dto.CaducidadResponse
// @Router       /api/caducidad [get]
func (h *DashboardHandler) Caducidad(c *fiber.Ctx) error {
	hoy, err := fechaDeCorte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.caducidadUC.Clasificar(hoy)
	if err != nil {
		return responderError(c, h.log, err, "error al clasificar la caducidad")
	}
	return c.JSON(out)
}

// ReporteInventario godoc
// @Summary      Reporte de inventario en PDF
// @Tags         dashboard
// @Produce      application/pdf
// @Param        fecha  query  string  false  "Fecha de corte YYYY-MM-DD (default hoy)"
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario [get]
func (h *DashboardHandler) ReporteInventario(c *fiber.Ctx) error {
	hoy, err := fechaDeCorte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdf, err := h.reporteUC.GenerarInventario(c.Context(), hoy)
	if err != nil {
		return responderError(c, h.log, err, "error al generar el reporte")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="inventario-%s.pdf"`, hoy.String()))
	return c.Send(pdf)
}
