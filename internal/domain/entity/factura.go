package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// Tipos de combustible del vehículo.
const (
	CombustibleDiesel    = "DIESEL"
	CombustibleGasolina  = "GASOLINA"
	CombustibleElectrico = "ELECTRICO"
	CombustibleHibrido   = "HIBRIDO"
)

// Factura es el registro central: una venta de contrato de rastreo
// vehicular hecha por una comercializadora.
//
// Los seis campos derivados (ValorFijo..TotalIva) son siempre la función
// pura de (ValorTotal, AnosServicio) según calculo.CalcularValores. Nunca
// se editan a mano: se recalculan en el servidor en cada create/update sin
// importar lo que envíe el cliente.
type Factura struct {
	ID               string
	Comercializadora string
	NumeroFactura    string // texto libre; se espera un tramo numérico para ordenar
	ValorTotal       decimal.Decimal
	AnosServicio     plan.PlanServicio
	FechaFactura     fecha.Fecha
	Cliente          string

	// Derivados de (ValorTotal, AnosServicio).
	ValorFijo         decimal.Decimal
	Excedente         decimal.Decimal
	IvaExcedente      decimal.Decimal
	ComisionVal       decimal.Decimal
	IvaGananciaPropia decimal.Decimal
	TotalIva          decimal.Decimal

	DatosVehiculo  *DatosVehiculo // opcional como un todo
	Pagada         bool
	NoDeseaRenovar bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Instalada reporta si el vehículo ya tiene fecha de entrega registrada.
// Solo las facturas instaladas entran al reporte de renovaciones.
func (f *Factura) Instalada() bool {
	return f.DatosVehiculo != nil && f.DatosVehiculo.FechaEntrega != nil &&
		!f.DatosVehiculo.FechaEntrega.EsCero()
}

// FechaEntrega devuelve la fecha de instalación o el valor cero si no existe.
func (f *Factura) FechaEntrega() fecha.Fecha {
	if !f.Instalada() {
		return fecha.Fecha{}
	}
	return *f.DatosVehiculo.FechaEntrega
}

// DatosVehiculo agrupa los metadatos del vehículo. El bloque completo es
// opcional; dentro de él cada campo es opcional por tipo (puntero o string
// vacío), no por chequeos de truthiness al serializar.
type DatosVehiculo struct {
	Modelo       string
	Ano          *int
	Tipo         string // DIESEL | GASOLINA | ELECTRICO | HIBRIDO
	Placa        string
	Color        string
	Ciudad       string
	Direccion    string
	Telefono     string
	FechaEntrega *fecha.Fecha // fecha de instalación; nil = pendiente
}

// Vacio reporta si ningún campo del bloque tiene valor.
func (d *DatosVehiculo) Vacio() bool {
	if d == nil {
		return true
	}
	return d.Modelo == "" && d.Ano == nil && d.Tipo == "" && d.Placa == "" &&
		d.Color == "" && d.Ciudad == "" && d.Direccion == "" && d.Telefono == "" &&
		(d.FechaEntrega == nil || d.FechaEntrega.EsCero())
}
