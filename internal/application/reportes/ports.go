package reportes

import (
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/calculo"
)

// ReportePDFGenerator genera la versión imprimible de cada reporte.
// La implementación vive en infrastructure/pdf.
type ReportePDFGenerator interface {
	Renovaciones(reporte *dto.RenovacionesResponse) ([]byte, error)
	Ganancia(reporte *dto.GananciaResponse) ([]byte, error)
	Vehiculos(reporte *dto.VehiculosResponse) ([]byte, error)
}

// ATSBuilder serializa un corte semestral al XML del Anexo Transaccional
// Simplificado. La implementación vive en infrastructure/sri.
type ATSBuilder interface {
	Construir(corte calculo.CorteSemestral) ([]byte, error)
}
