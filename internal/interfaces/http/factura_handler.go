package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/application/facturacion"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// FacturaHandler maneja las peticiones HTTP de facturas.
type FacturaHandler struct {
	uc *facturacion.UseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *facturacion.UseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear factura
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearFacturaRequest  true  "Datos de la factura (los derivados los calcula el servidor)"
// @Success      201   {object}  dto.FacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facturas [post]
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return errorFactura(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar factura (parcial)
// @Tags         facturas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la factura"
// @Param        body  body  dto.ActualizarFacturaRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.FacturaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [put]
func (h *FacturaHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ActualizarFacturaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return errorFactura(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         facturas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [delete]
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return errorFactura(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {object}  dto.FacturaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		return errorFactura(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas (orden numérico descendente)
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FacturaResponse
// @Router       /api/facturas [get]
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return errorFactura(c, err)
	}
	return c.JSON(out)
}

// ListByPeriod godoc
// @Summary      Listar facturas de un rango de fechas (inclusive)
// @Tags         facturas
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  true  "YYYY-MM-DD"
// @Param        fin     query  string  true  "YYYY-MM-DD"
// @Success      200  {array}  dto.FacturaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/facturas/periodo [get]
func (h *FacturaHandler) ListByPeriod(c *fiber.Ctx) error {
	inicio, err := fecha.Parse(c.Query("inicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "inicio debe ser YYYY-MM-DD"})
	}
	fin, err := fecha.Parse(c.Query("fin"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fin debe ser YYYY-MM-DD"})
	}
	out, err := h.uc.ListarPorPeriodo(c.Context(), inicio, fin)
	if err != nil {
		return errorFactura(c, err)
	}
	return c.JSON(out)
}

// errorFactura mapea errores de dominio a HTTP. ErrPlanDesconocido llega
// envuelto con el código ofensor, por eso errors.Is y no comparación directa.
func errorFactura(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de factura inválidos"})
	case errors.Is(err, domain.ErrFechaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha inválida"})
	case errors.Is(err, domain.ErrPlanDesconocido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_PLAN", Message: "plan de servicio desconocido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
