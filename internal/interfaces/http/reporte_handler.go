package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/application/reportes"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// ReporteHandler maneja los reportes derivados. Cada reporte de tabla
// acepta ?formato=pdf para la versión imprimible.
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler de reportes.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// CortesIva godoc
// @Summary      Cortes semestrales de IVA
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CorteSemestralResponse
// @Router       /api/reportes/iva/cortes [get]
func (h *ReporteHandler) CortesIva(c *fiber.Ctx) error {
	out, err := h.uc.CortesIva(c.Context())
	if err != nil {
		return errorReporte(c, err)
	}
	return c.JSON(out)
}

// TotalIvaPeriodo godoc
// @Summary      IVA total de un rango arbitrario
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  true  "YYYY-MM-DD"
// @Param        fin     query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.TotalIvaPeriodoResponse
// @Router       /api/reportes/iva/periodo [get]
func (h *ReporteHandler) TotalIvaPeriodo(c *fiber.Ctx) error {
	inicio, err := fecha.Parse(c.Query("inicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "inicio debe ser YYYY-MM-DD"})
	}
	fin, err := fecha.Parse(c.Query("fin"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fin debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.TotalIvaPeriodo(c.Context(), inicio, fin)
	if err != nil {
		return errorReporte(c, err)
	}
	return c.JSON(out)
}

// ExportarATS godoc
// @Summary      XML del anexo ATS del semestre que contiene la fecha dada
// @Tags         reportes
// @Security     Bearer
// @Produce      xml
// @Param        fecha  query  string  true  "YYYY-MM-DD (cualquier día del semestre)"
// @Success      200
// @Router       /api/reportes/iva/ats [get]
func (h *ReporteHandler) ExportarATS(c *fiber.Ctx) error {
	enSemestre, err := fecha.Parse(c.Query("fecha"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.ExportarATS(c.Context(), enSemestre)
	if err != nil {
		return errorReporte(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ats.xml"`)
	return c.Send(out)
}

// Renovaciones godoc
// @Summary      Reporte de renovaciones (solo facturas instaladas)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        estado      query  string  false  "todas | proximas | vencidas | vigentes"
// @Param        renovacion  query  string  false  "todas | renovaran | no_renovaran"
// @Param        formato     query  string  false  "pdf para la versión imprimible"
// @Success      200  {object}  dto.RenovacionesResponse
// @Router       /api/reportes/renovaciones [get]
func (h *ReporteHandler) Renovaciones(c *fiber.Ctx) error {
	var filtros dto.RenovacionesFiltro
	if err := c.QueryParser(&filtros); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if c.Query("formato") == "pdf" {
		out, err := h.uc.RenovacionesPDF(c.Context(), filtros)
		if err != nil {
			return errorReporte(c, err)
		}
		return enviarPDF(c, "renovaciones.pdf", out)
	}
	out, err := h.uc.Renovaciones(c.Context(), filtros)
	if err != nil {
		return errorReporte(c, err)
	}
	return c.JSON(out)
}

// Ganancia godoc
// @Summary      Reporte de ganancia por período
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        periodo  query  string  false  "este_mes | mes_anterior | rango"
// @Param        inicio   query  string  false  "YYYY-MM-DD (solo rango)"
// @Param        fin      query  string  false  "YYYY-MM-DD (solo rango)"
// @Param        formato  query  string  false  "pdf para la versión imprimible"
// @Success      200  {object}  dto.GananciaResponse
// @Router       /api/reportes/ganancia [get]
func (h *ReporteHandler) Ganancia(c *fiber.Ctx) error {
	var filtro dto.GananciaFiltro
	if err := c.QueryParser(&filtro); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if c.Query("formato") == "pdf" {
		out, err := h.uc.GananciaPDF(c.Context(), filtro)
		if err != nil {
			return errorReporte(c, err)
		}
		return enviarPDF(c, "ganancia.pdf", out)
	}
	out, err := h.uc.Ganancia(c.Context(), filtro)
	if err != nil {
		return errorReporte(c, err)
	}
	return c.JSON(out)
}

// Vehiculos godoc
// @Summary      Informe de vehículos (instalación y pago)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        instalacion  query  string  false  "todas | pendientes | instalados"
// @Param        pago         query  string  false  "todas | pagadas | pendientes"
// @Param        placa        query  string  false  "búsqueda insensible a acentos"
// @Param        cliente      query  string  false  "búsqueda insensible a acentos"
// @Param        ciudad       query  string  false  "búsqueda insensible a acentos"
// @Param        formato      query  string  false  "pdf para la versión imprimible"
// @Success      200  {object}  dto.VehiculosResponse
// @Router       /api/reportes/vehiculos [get]
func (h *ReporteHandler) Vehiculos(c *fiber.Ctx) error {
	var filtros dto.VehiculosFiltro
	if err := c.QueryParser(&filtros); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if c.Query("formato") == "pdf" {
		out, err := h.uc.VehiculosPDF(c.Context(), filtros)
		if err != nil {
			return errorReporte(c, err)
		}
		return enviarPDF(c, "vehiculos.pdf", out)
	}
	out, err := h.uc.Vehiculos(c.Context(), filtros)
	if err != nil {
		return errorReporte(c, err)
	}
	return c.JSON(out)
}

func enviarPDF(c *fiber.Ctx, nombre string, contenido []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(contenido)
}

func errorReporte(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro desconocido"})
	case domain.ErrFechaInvalida:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "rango de fechas inválido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
