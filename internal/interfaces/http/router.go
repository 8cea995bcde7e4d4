package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-rastreo/internal/application/auth"
	"github.com/tu-usuario/facturas-rastreo/internal/application/facturacion"
	"github.com/tu-usuario/facturas-rastreo/internal/application/reportes"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FacturaUC       *facturacion.UseCase
	ReportesUC      *reportes.UseCase
	AuthUC          *auth.UseCase
	PreferenciaRepo repository.PreferenciaRepository
	JWTSecret       string
}

// Router registra las rutas de la API. Todo lo protegido exige Bearer
// Token; el rol restringido solo llega al listado de facturas, el resto
// pasa por SoloAdmin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := SoloAdmin()

	// Facturas
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	facturas.Get("/", facturaHandler.List) // admin + restringido
	facturas.Get("/periodo", admin, facturaHandler.ListByPeriod)
	facturas.Post("/", admin, facturaHandler.Create)
	facturas.Get("/:id", admin, facturaHandler.GetByID)
	facturas.Put("/:id", admin, facturaHandler.Update)
	facturas.Delete("/:id", admin, facturaHandler.Delete)

	// Reportes (solo admin)
	rep := protected.Group("/reportes", admin)
	reporteHandler := NewReporteHandler(deps.ReportesUC)
	rep.Get("/iva/cortes", reporteHandler.CortesIva)
	rep.Get("/iva/periodo", reporteHandler.TotalIvaPeriodo)
	rep.Get("/iva/ats", reporteHandler.ExportarATS)
	rep.Get("/renovaciones", reporteHandler.Renovaciones)
	rep.Get("/ganancia", reporteHandler.Ganancia)
	rep.Get("/vehiculos", reporteHandler.Vehiculos)

	// Preferencias (solo admin)
	pref := protected.Group("/preferencias", admin)
	preferenciaHandler := NewPreferenciaHandler(deps.PreferenciaRepo)
	pref.Get("/:lista", preferenciaHandler.Get)
	pref.Put("/:lista", preferenciaHandler.Put)
}
