package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/repository"
)

// PreferenciaHandler maneja las listas de valores sugeridos del
// formulario (comercializadoras, colores).
type PreferenciaHandler struct {
	repo repository.PreferenciaRepository
}

// NewPreferenciaHandler construye el handler de preferencias.
func NewPreferenciaHandler(repo repository.PreferenciaRepository) *PreferenciaHandler {
	return &PreferenciaHandler{repo: repo}
}

// Get godoc
// @Summary      Obtener una lista de preferencias
// @Tags         preferencias
// @Security     Bearer
// @Produce      json
// @Param        lista  path  string  true  "comercializadoras | colores"
// @Success      200  {array}  string
// @Router       /api/preferencias/{lista} [get]
func (h *PreferenciaHandler) Get(c *fiber.Ctx) error {
	lista := c.Params("lista")
	if !listaValida(lista) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_LIST", Message: "lista desconocida"})
	}
	valores, err := h.repo.List(lista)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(valores)
}

// Put godoc
// @Summary      Reemplazar una lista de preferencias completa
// @Tags         preferencias
// @Security     Bearer
// @Accept       json
// @Param        lista  path  string    true  "comercializadoras | colores"
// @Param        body   body  []string  true  "valores en orden"
// @Success      204
// @Router       /api/preferencias/{lista} [put]
func (h *PreferenciaHandler) Put(c *fiber.Ctx) error {
	lista := c.Params("lista")
	if !listaValida(lista) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_LIST", Message: "lista desconocida"})
	}
	var valores []string
	if err := c.BodyParser(&valores); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera un arreglo de strings"})
	}
	if err := h.repo.Replace(lista, valores); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func listaValida(lista string) bool {
	return lista == repository.ListaComercializadoras || lista == repository.ListaColores
}
