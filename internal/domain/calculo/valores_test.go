package calculo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/calculo"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
)

// ──────────────────────────────────────────────────────────────────────────────
// Estos tests son el "canario en la mina" de la contabilidad: la
// descomposición (valor fijo, excedente, IVA, comisión) alimenta las
// declaraciones semestrales de IVA. Si alguien cambia inadvertidamente la
// tabla de valores fijos, la tarifa o el orden de las operaciones, los
// vectores exactos fallan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// TestCalcularValores_VectorExacto_SinExcedente: factura al valor fijo
// exacto del plan 2 ($301): todo cero salvo el IVA de la ganancia propia.
func TestCalcularValores_VectorExacto_SinExcedente(t *testing.T) {
	v, err := calculo.CalcularValores(d("301"), plan.Plan2, plan.ValoresFijos)
	require.NoError(t, err)

	assert.True(t, v.ValorFijo.Equal(d("301")), "valorFijo = %s", v.ValorFijo)
	assert.True(t, v.Excedente.Equal(d("0")), "excedente = %s", v.Excedente)
	assert.True(t, v.IvaExcedente.Equal(d("0")), "ivaExcedente = %s", v.IvaExcedente)
	assert.True(t, v.ComisionVal.Equal(d("0")), "comisionVal = %s", v.ComisionVal)
	assert.True(t, v.IvaGananciaPropia.Equal(d("45.15")), "ivaGananciaPropia = %s", v.IvaGananciaPropia)
	assert.True(t, v.TotalIva.Equal(d("45.15")), "totalIva = %s", v.TotalIva)
}

// TestCalcularValores_VectorExacto_ConExcedente: $500 en plan 1 ($208 fijo).
func TestCalcularValores_VectorExacto_ConExcedente(t *testing.T) {
	v, err := calculo.CalcularValores(d("500"), plan.Plan1, plan.ValoresFijos)
	require.NoError(t, err)

	assert.True(t, v.ValorFijo.Equal(d("208")), "valorFijo = %s", v.ValorFijo)
	assert.True(t, v.Excedente.Equal(d("292")), "excedente = %s", v.Excedente)
	assert.True(t, v.IvaExcedente.Equal(d("43.8")), "ivaExcedente = %s", v.IvaExcedente)
	assert.True(t, v.ComisionVal.Equal(d("248.2")), "comisionVal = %s", v.ComisionVal)
	assert.True(t, v.IvaGananciaPropia.Equal(d("31.2")), "ivaGananciaPropia = %s", v.IvaGananciaPropia)
	assert.True(t, v.TotalIva.Equal(d("75")), "totalIva = %s", v.TotalIva)
}

// TestCalcularValores_Identidades verifica, para los seis planes y varios
// montos, las dos identidades que las declaraciones asumen:
// valorFijo+excedente == valorTotal e
// ivaGananciaPropia+ivaExcedente == totalIva, de forma exacta.
func TestCalcularValores_Identidades(t *testing.T) {
	montos := []string{"0", "100", "208", "301", "414", "500", "999.99", "1234.56"}
	for _, p := range plan.Todos {
		for _, m := range montos {
			valorTotal := d(m)
			v, err := calculo.CalcularValores(valorTotal, p, plan.ValoresFijos)
			require.NoError(t, err, "plan %s monto %s", p, m)

			assert.True(t, v.ValorFijo.Add(v.Excedente).Equal(valorTotal),
				"plan %s monto %s: valorFijo+excedente != valorTotal", p, m)
			assert.True(t, v.IvaGananciaPropia.Add(v.IvaExcedente).Equal(v.TotalIva),
				"plan %s monto %s: suma de IVAs != totalIva", p, m)
		}
	}
}

// TestCalcularValores_Idempotente: el mismo input produce siempre el mismo
// output, byte a byte (sin estado oculto ni dependencia del tiempo).
func TestCalcularValores_Idempotente(t *testing.T) {
	v1, err1 := calculo.CalcularValores(d("777.77"), plan.Plan3Cayambe, plan.ValoresFijos)
	v2, err2 := calculo.CalcularValores(d("777.77"), plan.Plan3Cayambe, plan.ValoresFijos)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.Equal(t, v1.ValorFijo.String(), v2.ValorFijo.String())
	assert.Equal(t, v1.Excedente.String(), v2.Excedente.String())
	assert.Equal(t, v1.IvaExcedente.String(), v2.IvaExcedente.String())
	assert.Equal(t, v1.ComisionVal.String(), v2.ComisionVal.String())
	assert.Equal(t, v1.IvaGananciaPropia.String(), v2.IvaGananciaPropia.String())
	assert.Equal(t, v1.TotalIva.String(), v2.TotalIva.String())
}

// TestCalcularValores_ExcedenteNegativo: una factura por debajo del valor
// fijo es un estado válido (subvalorada), no un error.
func TestCalcularValores_ExcedenteNegativo(t *testing.T) {
	v, err := calculo.CalcularValores(d("100"), plan.Plan1, plan.ValoresFijos)
	require.NoError(t, err)
	assert.True(t, v.Excedente.Equal(d("-108")), "excedente = %s", v.Excedente)
	assert.True(t, v.ValorFijo.Add(v.Excedente).Equal(d("100")))
}

func TestCalcularValores_PlanDesconocido(t *testing.T) {
	_, err := calculo.CalcularValores(d("500"), plan.PlanServicio("5"), plan.ValoresFijos)
	assert.ErrorIs(t, err, domain.ErrPlanDesconocido)
}

// TestCalcularValores_TablaSustituible: la tabla se inyecta, así que un
// esquema alternativo produce otra descomposición sin tocar estado global.
func TestCalcularValores_TablaSustituible(t *testing.T) {
	tabla := plan.Tabla{plan.Plan1: d("100")}
	v, err := calculo.CalcularValores(d("200"), plan.Plan1, tabla)
	require.NoError(t, err)
	assert.True(t, v.ValorFijo.Equal(d("100")))
	assert.True(t, v.Excedente.Equal(d("100")))
	assert.True(t, v.IvaExcedente.Equal(d("15")))
}
