package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fruteria-api/internal/application/analytics"
	"github.com/jhoicas/fruteria-api/internal/application/movimientos"
	"github.com/jhoicas/fruteria-api/internal/application/reportes"
	"github.com/jhoicas/fruteria-api/internal/application/usecase"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC  *usecase.ProductoUseCase
	Movimientos *movimientos.UseCase
	DashboardUC *analytics.DashboardUseCase
	CaducidadUC *analytics.CaducidadUseCase
	ReporteUC   *reportes.ReporteUseCase
	Entradas    repository.EntradaRepository
	Salidas     repository.SalidaRepository
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, deps.Log)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Delete("/:id", productoHandler.Eliminar)

	// Entradas de stock
	entradas := api.Group("/entradas")
	entradaHandler := NewEntradaHandler(deps.Movimientos, deps.Entradas, deps.Log)
	entradas.Post("/", entradaHandler.Registrar)
	entradas.Get("/", entradaHandler.Listar)
	entradas.Get("/:id", entradaHandler.GetByID)
	entradas.Delete("/:id", entradaHandler.Eliminar)

	// Salidas de stock
	salidas := api.Group("/salidas")
	salidaHandler := NewSalidaHandler(deps.Movimientos, deps.Salidas, deps.Log)
	salidas.Post("/", salidaHandler.Registrar)
	salidas.Get("/", salidaHandler.Listar)
	salidas.Get("/:id", salidaHandler.GetByID)
	salidas.Delete("/:id", salidaHandler.Eliminar)

	// Vistas de lectura
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.CaducidadUC, deps.ReporteUC, deps.Log)
	api.Get("/dashboard/resumen", dashboardHandler.Resumen)
	api.Get("/caducidad", dashboardHandler.Caducidad)
	api.Get("/reportes/inventario", dashboardHandler.ReporteInventario)
}
