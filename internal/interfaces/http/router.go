package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallerpro/repuestos-api/internal/application/auth"
	"github.com/tallerpro/repuestos-api/internal/application/inventory"
	"github.com/tallerpro/repuestos-api/internal/application/usecase"
	"github.com/tallerpro/repuestos-api/internal/domain/entity"
	"github.com/tallerpro/repuestos-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ParteUC         *usecase.ParteUseCase
	ProveedorUC     *usecase.ProveedorUseCase
	UsuarioUC       *usecase.UsuarioUseCase
	ReportesUC      *usecase.ReportesUseCase
	ConfiguracionUC *usecase.ConfiguracionUseCase
	MovimientoUC    *inventory.RegistrarMovimientoUseCase
	AuthUC          *auth.AuthUseCase
	ActividadRepo   repository.RegistroActividadRepository
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	escritura := RequireRole(entity.RolAdministrador, entity.RolOperador)
	soloAdmin := RequireRole(entity.RolAdministrador)

	// Partes (protegido; escritura para administrador y operador)
	partes := protected.Group("/partes")
	parteHandler := NewParteHandler(deps.ParteUC, deps.ReportesUC)
	partes.Get("/", parteHandler.List)
	partes.Post("/", escritura, parteHandler.Create)
	partes.Get("/:id", parteHandler.GetByID)
	partes.Put("/:id", escritura, parteHandler.Update)
	partes.Delete("/:id", soloAdmin, parteHandler.Delete)
	partes.Get("/:id/movimientos", parteHandler.ListMovimientos)

	// Movimientos de inventario (protegido)
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	protected.Post("/movimientos", escritura, movimientoHandler.Registrar)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Post("/", escritura, proveedorHandler.Create)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", escritura, proveedorHandler.Update)
	proveedores.Delete("/:id", soloAdmin, proveedorHandler.Delete)

	// Usuarios (solo administrador)
	usuarios := protected.Group("/usuarios", soloAdmin)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Reportes (protegido, solo lectura)
	reportes := protected.Group("/reportes")
	reportesHandler := NewReportesHandler(deps.ReportesUC)
	reportes.Get("/dashboard", reportesHandler.Dashboard)
	reportes.Get("/bajo-stock", reportesHandler.BajoStock)
	reportes.Get("/valor-inventario", reportesHandler.ValorInventario)

	// Configuración del sistema (solo administrador)
	configuraciones := protected.Group("/configuraciones", soloAdmin)
	configuracionHandler := NewConfiguracionHandler(deps.ConfiguracionUC)
	configuraciones.Get("/porcentaje_ganancia", configuracionHandler.GetGanancia)
	configuraciones.Put("/porcentaje_ganancia", configuracionHandler.SetGanancia)

	// Log de actividad (solo administrador)
	actividadHandler := NewActividadHandler(deps.ActividadRepo)
	protected.Get("/actividad", soloAdmin, actividadHandler.List)
}
