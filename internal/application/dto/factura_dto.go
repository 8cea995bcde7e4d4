package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// DatosVehiculoDTO bloque opcional de metadatos del vehículo.
type DatosVehiculoDTO struct {
	Modelo       string      `json:"modelo,omitempty"`
	Ano          *int        `json:"ano,omitempty"`
	Tipo         string      `json:"tipo,omitempty"` // DIESEL|GASOLINA|ELECTRICO|HIBRIDO
	Placa        string      `json:"placa,omitempty"`
	Color        string      `json:"color,omitempty"`
	Ciudad       string      `json:"ciudad,omitempty"`
	Direccion    string      `json:"direccion,omitempty"`
	Telefono     string      `json:"telefono,omitempty"`
	FechaEntrega fecha.Fecha `json:"fecha_entrega,omitempty"` // instalación; cero = pendiente
}

// CrearFacturaRequest body para POST /api/facturas.
// Los campos derivados NO se aceptan del cliente: el servidor los
// recalcula siempre desde (valor_total, anos_servicio).
type CrearFacturaRequest struct {
	Comercializadora string            `json:"comercializadora"`
	NumeroFactura    string            `json:"numero_factura"`
	ValorTotal       decimal.Decimal   `json:"valor_total"`
	AnosServicio     plan.PlanServicio `json:"anos_servicio"`
	FechaFactura     fecha.Fecha       `json:"fecha_factura"`
	Cliente          string            `json:"cliente"`
	DatosVehiculo    *DatosVehiculoDTO `json:"datos_vehiculo,omitempty"`
	Pagada           bool              `json:"pagada"`
	NoDeseaRenovar   bool              `json:"no_desea_renovar"`
}

// ActualizarFacturaRequest body para PUT /api/facturas/:id. Campos nil no
// se tocan; si cambia valor_total o anos_servicio los derivados se
// recalculan en la misma escritura.
type ActualizarFacturaRequest struct {
	Comercializadora *string            `json:"comercializadora,omitempty"`
	NumeroFactura    *string            `json:"numero_factura,omitempty"`
	ValorTotal       *decimal.Decimal   `json:"valor_total,omitempty"`
	AnosServicio     *plan.PlanServicio `json:"anos_servicio,omitempty"`
	FechaFactura     *fecha.Fecha       `json:"fecha_factura,omitempty"`
	Cliente          *string            `json:"cliente,omitempty"`
	DatosVehiculo    *DatosVehiculoDTO  `json:"datos_vehiculo,omitempty"` // presente = reemplaza el bloque completo
	Pagada           *bool              `json:"pagada,omitempty"`
	NoDeseaRenovar   *bool              `json:"no_desea_renovar,omitempty"`
}

// FacturaResponse factura completa con sus campos derivados.
type FacturaResponse struct {
	ID               string            `json:"id"`
	Comercializadora string            `json:"comercializadora"`
	NumeroFactura    string            `json:"numero_factura"`
	ValorTotal       decimal.Decimal   `json:"valor_total"`
	AnosServicio     plan.PlanServicio `json:"anos_servicio"`
	FechaFactura     fecha.Fecha       `json:"fecha_factura"`
	Cliente          string            `json:"cliente"`

	ValorFijo         decimal.Decimal `json:"valor_fijo"`
	Excedente         decimal.Decimal `json:"excedente"`
	IvaExcedente      decimal.Decimal `json:"iva_excedente"`
	ComisionVal       decimal.Decimal `json:"comision_val"`
	IvaGananciaPropia decimal.Decimal `json:"iva_ganancia_propia"`
	TotalIva          decimal.Decimal `json:"total_iva"`

	DatosVehiculo  *DatosVehiculoDTO `json:"datos_vehiculo,omitempty"`
	Pagada         bool              `json:"pagada"`
	NoDeseaRenovar bool              `json:"no_desea_renovar"`
}
