package calculo

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// Ganancia calcula la utilidad de una factura: valor total menos comisión
// y menos IVA total. Siempre se deriva al momento de leer; no se guarda en
// el registro.
func Ganancia(f *entity.Factura) decimal.Decimal {
	return f.ValorTotal.Sub(f.ComisionVal).Sub(f.TotalIva)
}

// FiltrarPorPeriodo selecciona las facturas cuya fecha cae en
// [inicio, fin] (ambos inclusive) y las devuelve en orden cronológico
// ascendente. Facturas con fecha inválida quedan excluidas del rango en
// lugar de romper el filtro.
func FiltrarPorPeriodo(facturas []entity.Factura, inicio, fin fecha.Fecha) []entity.Factura {
	var dentro []entity.Factura
	for _, f := range facturas {
		if f.FechaFactura.EsCero() {
			continue
		}
		if f.FechaFactura.EnRango(inicio, fin) {
			dentro = append(dentro, f)
		}
	}
	sort.SliceStable(dentro, func(i, j int) bool {
		return dentro[i].FechaFactura.Antes(dentro[j].FechaFactura)
	})
	return dentro
}

// OrdenarPorNumeroFactura ordena descendente por el valor numérico del
// número de factura. Las comercializadoras rellenan con ceros de forma
// inconsistente, así que el orden lexicográfico no sirve: se extraen los
// dígitos del texto y se comparan como entero ("INV-100" > "INV-002" >
// "INV-1"). Un número sin dígitos ordena como 0.
func OrdenarPorNumeroFactura(facturas []entity.Factura) {
	sort.SliceStable(facturas, func(i, j int) bool {
		return numeroDeFactura(facturas[i].NumeroFactura) > numeroDeFactura(facturas[j].NumeroFactura)
	})
}

// numeroDeFactura concatena todos los dígitos del texto y los interpreta
// como entero, replicando el orden que los usuarios esperan en el listado.
func numeroDeFactura(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
