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
	"github.com/tu-usuario/facturas-rastreo/internal/application/auth"
	"github.com/tu-usuario/facturas-rastreo/internal/application/facturacion"
	"github.com/tu-usuario/facturas-rastreo/internal/application/reportes"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
	infrapdf "github.com/tu-usuario/facturas-rastreo/internal/infrastructure/pdf"
	"github.com/tu-usuario/facturas-rastreo/internal/infrastructure/postgres"
	"github.com/tu-usuario/facturas-rastreo/internal/infrastructure/sri"
	httpRouter "github.com/tu-usuario/facturas-rastreo/internal/interfaces/http"
	"github.com/tu-usuario/facturas-rastreo/pkg/config"
	"github.com/tu-usuario/facturas-rastreo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    "info",
		Servicio: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	facturaRepo := postgres.NewFacturaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	preferenciaRepo := postgres.NewPreferenciaRepository(pool)

	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	atsBuilder := sri.NewATSBuilder(cfg.SRI.RUC)

	facturaUC := facturacion.NewUseCase(facturaRepo, plan.ValoresFijos)
	reportesUC := reportes.NewUseCase(facturaRepo, pdfGenerator, atsBuilder)
	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Facturas Rastreo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FacturaUC:       facturaUC,
		ReportesUC:      reportesUC,
		AuthUC:          authUC,
		PreferenciaRepo: preferenciaRepo,
		JWTSecret:       cfg.JWT.Secret,
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
