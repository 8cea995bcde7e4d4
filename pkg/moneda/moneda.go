// Package moneda formatea montos como moneda (dólares americanos) con el
// locale es-EC: dos decimales fijos y separador de miles local. Es la única
// frontera donde se redondea: los cálculos internos trabajan siempre con
// decimal.Decimal sin redondear.
package moneda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var impresor = message.NewPrinter(language.MustParse("es-EC"))

// Formatear devuelve el monto como "$1.234,56" (es-EC, USD, 2 decimales).
func Formatear(v decimal.Decimal) string {
	f, _ := v.Round(2).Float64()
	return impresor.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
