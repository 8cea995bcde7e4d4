package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// CorteSemestralResponse un corte de IVA (ventana semestral fija).
type CorteSemestralResponse struct {
	Etiqueta string            `json:"etiqueta"` // "Enero-Junio 2024"
	Inicio   fecha.Fecha       `json:"inicio"`
	Fin      fecha.Fecha       `json:"fin"`
	TotalIva decimal.Decimal   `json:"total_iva"`
	Facturas []FacturaResponse `json:"facturas"`
}

// TotalIvaPeriodoResponse total de IVA de un rango arbitrario.
type TotalIvaPeriodoResponse struct {
	Inicio   fecha.Fecha     `json:"inicio"`
	Fin      fecha.Fecha     `json:"fin"`
	TotalIva decimal.Decimal `json:"total_iva"`
	Cantidad int             `json:"cantidad"`
}

// RenovacionResponse una factura instalada con su estado de renovación.
type RenovacionResponse struct {
	FacturaID        string          `json:"factura_id"`
	Comercializadora string          `json:"comercializadora"`
	NumeroFactura    string          `json:"numero_factura"`
	Cliente          string          `json:"cliente"`
	Placa            string          `json:"placa,omitempty"`
	FechaEntrega     fecha.Fecha     `json:"fecha_entrega"`
	FechaVencimiento fecha.Fecha     `json:"fecha_vencimiento"`
	DiasRestantes    int             `json:"dias_restantes"`
	Estado           string          `json:"estado"` // Vigente | Próximo a vencer | Vencido
	NoDeseaRenovar   bool            `json:"no_desea_renovar"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
}

// RenovacionesFiltro filtros del reporte de renovaciones.
type RenovacionesFiltro struct {
	Estado     string `query:"estado"`     // todas | proximas | vencidas | vigentes
	Renovacion string `query:"renovacion"` // todas | renovaran | no_renovaran
}

// RenovacionesResponse reporte completo de renovaciones.
type RenovacionesResponse struct {
	Renovaciones    []RenovacionResponse `json:"renovaciones"`
	TotalInstaladas int                  `json:"total_instaladas"`
	SinFechaEntrega int                  `json:"sin_fecha_entrega"`
}

// GananciaFiltro período del reporte de ganancia.
type GananciaFiltro struct {
	Periodo string `query:"periodo"` // este_mes | mes_anterior | rango
	Inicio  string `query:"inicio"`  // YYYY-MM-DD (solo rango)
	Fin     string `query:"fin"`
}

// GananciaFila una factura del período con su utilidad derivada.
type GananciaFila struct {
	FacturaID        string          `json:"factura_id"`
	FechaFactura     fecha.Fecha     `json:"fecha_factura"`
	Comercializadora string          `json:"comercializadora"`
	NumeroFactura    string          `json:"numero_factura"`
	Cliente          string          `json:"cliente"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
	ComisionVal      decimal.Decimal `json:"comision_val"`
	TotalIva         decimal.Decimal `json:"total_iva"`
	Ganancia         decimal.Decimal `json:"ganancia"`
}

// GananciaTotales agregados del período.
type GananciaTotales struct {
	ValorTotal  decimal.Decimal `json:"valor_total"`
	ComisionVal decimal.Decimal `json:"comision_val"`
	TotalIva    decimal.Decimal `json:"total_iva"`
	Ganancia    decimal.Decimal `json:"ganancia"`
}

// GananciaResponse reporte de ganancia de un período.
type GananciaResponse struct {
	Inicio  fecha.Fecha     `json:"inicio"`
	Fin     fecha.Fecha     `json:"fin"`
	Filas   []GananciaFila  `json:"filas"`
	Totales GananciaTotales `json:"totales"`
}

// VehiculosFiltro filtros del informe de vehículos (instalación y pago).
type VehiculosFiltro struct {
	Instalacion string `query:"instalacion"` // todas | pendientes | instalados
	Pago        string `query:"pago"`        // todas | pagadas | pendientes
	Placa       string `query:"placa"`
	Cliente     string `query:"cliente"`
	Ciudad      string `query:"ciudad"`
}

// VehiculoFila una factura en el informe de vehículos.
type VehiculoFila struct {
	FacturaID        string          `json:"factura_id"`
	Comercializadora string          `json:"comercializadora"`
	NumeroFactura    string          `json:"numero_factura"`
	Cliente          string          `json:"cliente"`
	Placa            string          `json:"placa,omitempty"`
	Ciudad           string          `json:"ciudad,omitempty"`
	FechaEntrega     fecha.Fecha     `json:"fecha_entrega"` // cero = pendiente de instalación
	Instalado        bool            `json:"instalado"`
	Pagada           bool            `json:"pagada"`
	ValorTotal       decimal.Decimal `json:"valor_total"`
}

// VehiculosResponse informe de vehículos con conteos.
type VehiculosResponse struct {
	Filas      []VehiculoFila `json:"filas"`
	Total      int            `json:"total"`
	Instalados int            `json:"instalados"`
	Pendientes int            `json:"pendientes"`
}
