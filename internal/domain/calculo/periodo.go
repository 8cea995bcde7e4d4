package calculo

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// Periodo es una ventana semestral [Inicio, Fin], ambos inclusive.
type Periodo struct {
	Inicio fecha.Fecha
	Fin    fecha.Fecha
}

// Etiqueta devuelve el nombre del semestre ("Enero-Junio 2024").
func (p Periodo) Etiqueta() string {
	if p.Inicio.Mes() == time.January {
		return fmt.Sprintf("Enero-Junio %d", p.Inicio.Anio())
	}
	return fmt.Sprintf("Julio-Diciembre %d", p.Inicio.Anio())
}

// PeriodoSemestral devuelve la ventana semestral fija que contiene la
// fecha: 1 de enero–30 de junio o 1 de julio–31 de diciembre. Las ventanas
// no se solapan y cubren el año completo.
func PeriodoSemestral(f fecha.Fecha) Periodo {
	anio := f.Anio()
	if f.Mes() < time.July {
		return Periodo{
			Inicio: fecha.Nueva(anio, time.January, 1),
			Fin:    fecha.Nueva(anio, time.June, 30),
		}
	}
	return Periodo{
		Inicio: fecha.Nueva(anio, time.July, 1),
		Fin:    fecha.Nueva(anio, time.December, 31),
	}
}

// CorteSemestral agrupa las facturas de una ventana semestral con su IVA
// total. Es un agregado derivado: se recalcula desde la lista de facturas
// en memoria, nunca se persiste.
type CorteSemestral struct {
	Periodo  Periodo
	TotalIva decimal.Decimal
	Facturas []entity.Factura
}

// AgruparCortesSemestrales agrupa las facturas por su ventana semestral y
// suma el IVA total de cada corte. La clave de agrupación se deriva de la
// fecha de la propia factura (nunca del timestamp de creación); facturas
// con fecha inválida (valor cero) quedan fuera. El resultado va ascendente
// por inicio de ventana.
func AgruparCortesSemestrales(facturas []entity.Factura) []CorteSemestral {
	porInicio := make(map[fecha.Fecha]*CorteSemestral)
	for _, f := range facturas {
		if f.FechaFactura.EsCero() {
			continue
		}
		periodo := PeriodoSemestral(f.FechaFactura)
		corte, ok := porInicio[periodo.Inicio]
		if !ok {
			corte = &CorteSemestral{Periodo: periodo}
			porInicio[periodo.Inicio] = corte
		}
		corte.Facturas = append(corte.Facturas, f)
		corte.TotalIva = corte.TotalIva.Add(f.TotalIva)
	}

	cortes := make([]CorteSemestral, 0, len(porInicio))
	for _, c := range porInicio {
		cortes = append(cortes, *c)
	}
	sort.Slice(cortes, func(i, j int) bool {
		return cortes[i].Periodo.Inicio.Antes(cortes[j].Periodo.Inicio)
	})
	return cortes
}
