package calculo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/calculo"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
)

func TestFechaVencimiento(t *testing.T) {
	instalacion := fechaDe(t, "2024-01-10")

	venc, exacto := calculo.FechaVencimiento(instalacion, plan.Plan1)
	assert.True(t, exacto)
	assert.Equal(t, "2025-01-10", venc.String())

	venc, exacto = calculo.FechaVencimiento(instalacion, plan.Plan3Cayambe)
	assert.True(t, exacto)
	assert.Equal(t, "2027-01-10", venc.String())
}

// TestFechaVencimiento_FallbackAnomalo: un código irreconocible cae al
// fallback de 1 año y lo reporta para que el caller lo registre.
func TestFechaVencimiento_FallbackAnomalo(t *testing.T) {
	venc, exacto := calculo.FechaVencimiento(fechaDe(t, "2024-01-10"), plan.PlanServicio("corrupto"))
	assert.False(t, exacto)
	assert.Equal(t, "2025-01-10", venc.String())
}

// TestFechaVencimiento_Bisiesto: instalación el 29 de febrero normaliza al
// 1 de marzo en años no bisiestos (semántica de time.Date, fijada aquí).
func TestFechaVencimiento_Bisiesto(t *testing.T) {
	venc, _ := calculo.FechaVencimiento(fechaDe(t, "2024-02-29"), plan.Plan1)
	assert.Equal(t, "2025-03-01", venc.String())
}

// TestClasificarRenovacion_Vectores cubre los vectores del flujo real:
// instalación 2024-01-10 con plan de 1 año vence el 2025-01-10.
func TestClasificarRenovacion_Vectores(t *testing.T) {
	venc, _ := calculo.FechaVencimiento(fechaDe(t, "2024-01-10"), plan.Plan1)

	dias := calculo.DiasRestantes(venc, fechaDe(t, "2024-12-27"))
	assert.Equal(t, 14, dias)
	assert.Equal(t, calculo.EstadoProximoAVencer, calculo.ClasificarRenovacion(dias))

	dias = calculo.DiasRestantes(venc, fechaDe(t, "2025-01-11"))
	assert.Equal(t, -1, dias)
	assert.Equal(t, calculo.EstadoVencido, calculo.ClasificarRenovacion(dias))
}

func TestClasificarRenovacion_Umbrales(t *testing.T) {
	casos := map[int]calculo.EstadoRenovacion{
		-100: calculo.EstadoVencido,
		-1:   calculo.EstadoVencido,
		0:    calculo.EstadoProximoAVencer, // vence hoy
		15:   calculo.EstadoProximoAVencer, // borde de la ventana de alerta
		16:   calculo.EstadoVigente,
		365:  calculo.EstadoVigente,
	}
	for dias, esperado := range casos {
		assert.Equal(t, esperado, calculo.ClasificarRenovacion(dias), "dias=%d", dias)
	}
}
