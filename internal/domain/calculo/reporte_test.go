package calculo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/calculo"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
)

func TestGanancia(t *testing.T) {
	f := entity.Factura{
		ValorTotal:  d("500"),
		ComisionVal: d("248.2"),
		TotalIva:    d("75"),
	}
	assert.True(t, calculo.Ganancia(&f).Equal(d("176.8")), "ganancia = %s", calculo.Ganancia(&f))
}

func TestFiltrarPorPeriodo_InclusivoYOrdenado(t *testing.T) {
	facturas := []entity.Factura{
		facturaConIva(t, "003", "2024-03-20", "0"),
		facturaConIva(t, "001", "2024-03-01", "0"),
		facturaConIva(t, "002", "2024-03-31", "0"),
		facturaConIva(t, "004", "2024-04-01", "0"), // fuera del rango
	}

	dentro := calculo.FiltrarPorPeriodo(facturas, fechaDe(t, "2024-03-01"), fechaDe(t, "2024-03-31"))
	require.Len(t, dentro, 3)
	// ascendente por fecha para reportes cronológicos
	assert.Equal(t, "001", dentro[0].NumeroFactura)
	assert.Equal(t, "003", dentro[1].NumeroFactura)
	assert.Equal(t, "002", dentro[2].NumeroFactura)
}

func TestFiltrarPorPeriodo_ExcluyeFechaInvalida(t *testing.T) {
	facturas := []entity.Factura{
		{NumeroFactura: "sin-fecha"},
		facturaConIva(t, "001", "2024-03-15", "0"),
	}
	dentro := calculo.FiltrarPorPeriodo(facturas, fechaDe(t, "2024-01-01"), fechaDe(t, "2024-12-31"))
	require.Len(t, dentro, 1)
	assert.Equal(t, "001", dentro[0].NumeroFactura)
}

// TestOrdenarPorNumeroFactura: orden numérico descendente, no lexicográfico.
// "INV-100" (100) > "INV-002" (2) > "INV-1" (1).
func TestOrdenarPorNumeroFactura(t *testing.T) {
	facturas := []entity.Factura{
		{NumeroFactura: "INV-002"},
		{NumeroFactura: "INV-100"},
		{NumeroFactura: "INV-1"},
	}
	calculo.OrdenarPorNumeroFactura(facturas)

	assert.Equal(t, "INV-100", facturas[0].NumeroFactura)
	assert.Equal(t, "INV-002", facturas[1].NumeroFactura)
	assert.Equal(t, "INV-1", facturas[2].NumeroFactura)
}

func TestOrdenarPorNumeroFactura_SinDigitosOrdenaComoCero(t *testing.T) {
	facturas := []entity.Factura{
		{NumeroFactura: "S/N"},
		{NumeroFactura: "7"},
	}
	calculo.OrdenarPorNumeroFactura(facturas)
	assert.Equal(t, "7", facturas[0].NumeroFactura)
	assert.Equal(t, "S/N", facturas[1].NumeroFactura)
}
