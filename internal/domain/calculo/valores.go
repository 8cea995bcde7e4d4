// Package calculo contiene las reglas de negocio puras de la facturación:
// la descomposición monetaria de una factura (valor fijo, excedente, IVA,
// comisión), los cortes semestrales de IVA y la clasificación de
// renovaciones. Todo es determinista, sin I/O y sin estado compartido.
package calculo

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
)

// PorcentajeIva es la tarifa de IVA vigente (15%).
var PorcentajeIva = decimal.RequireFromString("0.15")

// Valores es la descomposición derivada de una factura. Alimenta la
// contabilidad y las declaraciones de IVA: los montos deben ser exactos,
// por eso se calculan en decimal sin redondeo interno (el redondeo ocurre
// solo al presentar, en pkg/moneda).
type Valores struct {
	ValorFijo         decimal.Decimal
	Excedente         decimal.Decimal
	IvaExcedente      decimal.Decimal
	ComisionVal       decimal.Decimal
	IvaGananciaPropia decimal.Decimal
	TotalIva          decimal.Decimal
}

// CalcularValores descompone el valor total de una factura según el plan.
// El orden de las operaciones es el autoritativo para las declaraciones:
//
//	valorFijo         = tabla[plan]
//	excedente         = valorTotal - valorFijo      (puede ser negativo)
//	ivaExcedente      = excedente * 15%
//	comisionVal       = valorTotal - valorFijo - ivaExcedente
//	ivaGananciaPropia = valorFijo * 15%
//	totalIva          = ivaGananciaPropia + ivaExcedente
//
// Garantiza valorFijo+excedente == valorTotal e
// ivaGananciaPropia+ivaExcedente == totalIva de forma exacta. Un excedente
// negativo (factura por debajo del valor fijo) es un estado válido; la no
// negatividad del valor total la valida el caller, no esta función.
func CalcularValores(valorTotal decimal.Decimal, p plan.PlanServicio, tabla plan.Tabla) (Valores, error) {
	valorFijo, ok := tabla[p]
	if !ok {
		return Valores{}, fmt.Errorf("%w: %q", domain.ErrPlanDesconocido, p)
	}

	excedente := valorTotal.Sub(valorFijo)
	ivaExcedente := excedente.Mul(PorcentajeIva)
	comisionVal := valorTotal.Sub(valorFijo).Sub(ivaExcedente)
	ivaGananciaPropia := valorFijo.Mul(PorcentajeIva)
	totalIva := ivaGananciaPropia.Add(ivaExcedente)

	return Valores{
		ValorFijo:         valorFijo,
		Excedente:         excedente,
		IvaExcedente:      ivaExcedente,
		ComisionVal:       comisionVal,
		IvaGananciaPropia: ivaGananciaPropia,
		TotalIva:          totalIva,
	}, nil
}
