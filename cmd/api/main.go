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
	"github.com/tallerpro/repuestos-api/internal/application/activity"
	"github.com/tallerpro/repuestos-api/internal/application/auth"
	"github.com/tallerpro/repuestos-api/internal/application/inventory"
	"github.com/tallerpro/repuestos-api/internal/application/usecase"
	"github.com/tallerpro/repuestos-api/internal/infrastructure/postgres"
	httpRouter "github.com/tallerpro/repuestos-api/internal/interfaces/http"
	"github.com/tallerpro/repuestos-api/pkg/config"
	"github.com/tallerpro/repuestos-api/pkg/logger"
)

func main() {
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	parteRepo := postgres.NewParteRepuestoRepository(pool)
	movRepo := postgres.NewMovimientoInventarioRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	actividadRepo := postgres.NewRegistroActividadRepository(pool)
	reportesRepo := postgres.NewReportesRepository(pool)
	configuracionRepo := postgres.NewConfiguracionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registrador := activity.NewRegistrador(actividadRepo, log)
	movimientoUC := inventory.NewRegistrarMovimientoUseCase(txRunner, registrador)
	parteUC := usecase.NewParteUseCase(parteRepo, movRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	reportesUC := usecase.NewReportesUseCase(reportesRepo, movRepo)
	configuracionUC := usecase.NewConfiguracionUseCase(configuracionRepo, registrador)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
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
		Title:    "Repuestos API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ParteUC:         parteUC,
		ProveedorUC:     proveedorUC,
		UsuarioUC:       usuarioUC,
		ReportesUC:      reportesUC,
		ConfiguracionUC: configuracionUC,
		MovimientoUC:    movimientoUC,
		AuthUC:          authUC,
		ActividadRepo:   actividadRepo,
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
