package calculo

import (
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// EstadoRenovacion clasifica qué tan cerca está el vencimiento del contrato.
type EstadoRenovacion string

const (
	EstadoVigente        EstadoRenovacion = "Vigente"
	EstadoProximoAVencer EstadoRenovacion = "Próximo a vencer"
	EstadoVencido        EstadoRenovacion = "Vencido"
)

// DiasAlerta es la ventana fija de alerta: un contrato que vence dentro de
// los próximos 15 días se reporta como próximo a vencer. No es configurable.
const DiasAlerta = 15

// FechaVencimiento calcula el vencimiento del contrato: fecha de
// instalación más la duración del plan en años de calendario. exacto=false
// indica que el código de plan no decodificó a [1,3] y se aplicó el
// fallback de 1 año; el caller debe registrarlo como anomalía.
func FechaVencimiento(instalacion fecha.Fecha, p plan.PlanServicio) (venc fecha.Fecha, exacto bool) {
	anios, exacto := p.Duracion()
	return instalacion.AddAnios(anios), exacto
}

// DiasRestantes devuelve los días de calendario completos entre hoy y el
// vencimiento (negativo si ya venció). Granularidad estricta de día:
// ambas fechas se tratan como medianoche local.
func DiasRestantes(vencimiento, hoy fecha.Fecha) int {
	return hoy.DiasHasta(vencimiento)
}

// ClasificarRenovacion aplica los umbrales en orden de prioridad:
// días < 0 es Vencido; 0..15 es Próximo a vencer; el resto Vigente.
func ClasificarRenovacion(diasRestantes int) EstadoRenovacion {
	switch {
	case diasRestantes < 0:
		return EstadoVencido
	case diasRestantes <= DiasAlerta:
		return EstadoProximoAVencer
	default:
		return EstadoVigente
	}
}
