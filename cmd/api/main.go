package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/application/analytics"
	"github.com/jhoicas/fruteria-api/internal/application/movimientos"
	"github.com/jhoicas/fruteria-api/internal/application/reportes"
	"github.com/jhoicas/fruteria-api/internal/application/usecase"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/fruteria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/fruteria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fruteria-api/internal/infrastructure/rest"
	httpRouter "github.com/jhoicas/fruteria-api/internal/interfaces/http"
	"github.com/jhoicas/fruteria-api/pkg/config"
	"github.com/jhoicas/fruteria-api/pkg/logger"
)

func main() {
	// El contrato JSON del dashboard usa números planos para cantidades y
	// precios, no strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Repo.Driver).
		Msg("iniciando aplicación")

	var (
		productoRepo repository.ProductoRepository
		entradaRepo  repository.EntradaRepository
		salidaRepo   repository.SalidaRepository
		txRunner     movimientos.TxRunner
	)

	switch cfg.Repo.Driver {
	case "postgres":
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		productoRepo = postgres.NewProductoRepository(pool)
		entradaRepo = postgres.NewEntradaRepository(pool)
		salidaRepo = postgres.NewSalidaRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	default: // rest
		cliente := rest.NewCliente(cfg.Repo.BaseURL, time.Duration(cfg.Repo.TimeoutSeconds)*time.Second)
		productoRepo = rest.NewProductoRepository(cliente)
		entradaRepo = rest.NewEntradaRepository(cliente)
		salidaRepo = rest.NewSalidaRepository(cliente)
		txRunner = movimientos.NewSecuencialRunner(productoRepo, entradaRepo, salidaRepo)
	}

	productoUC := usecase.NewProductoUseCase(productoRepo)
	movimientosUC := movimientos.NewUseCase(txRunner)
	dashboardUC := analytics.NewDashboardUseCase(productoRepo, entradaRepo, salidaRepo)
	caducidadUC := analytics.NewCaducidadUseCase(productoRepo)
	reporteUC := reportes.NewReporteUseCase(caducidadUC, infrapdf.NewMarotoReporteGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frutería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:  productoUC,
		Movimientos: movimientosUC,
		DashboardUC: dashboardUC,
		CaducidadUC: caducidadUC,
		ReporteUC:   reporteUC,
		Entradas:    entradaRepo,
		Salidas:     salidaRepo,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
