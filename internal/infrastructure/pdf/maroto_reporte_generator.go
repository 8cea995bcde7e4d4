// Package pdf implementa la versión imprimible de los reportes con
// Maroto v2: una tabla apaisada A4 por reporte, con fila de totales o
// conteos al pie según el caso.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/application/reportes"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
	"github.com/tu-usuario/facturas-rastreo/pkg/moneda"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlerta  = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ reportes.ReportePDFGenerator = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa reportes.ReportePDFGenerator usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// Renovaciones genera la tabla de vencimientos, lo más urgente primero.
func (g *MarotoReporteGenerator) Renovaciones(reporte *dto.RenovacionesResponse) ([]byte, error) {
	m := nuevoDocumento("Reporte de renovaciones")

	m.AddRows(tituloRow("RENOVACIONES DE CONTRATOS",
		fmt.Sprintf("Instaladas: %d   |   Sin fecha de entrega: %d",
			reporte.TotalInstaladas, reporte.SinFechaEntrega)))
	m.AddRows(cabeceraTabla(
		celda{"Comercializadora", 2, align.Left},
		celda{"N° Factura", 1, align.Left},
		celda{"Cliente", 3, align.Left},
		celda{"Placa", 1, align.Center},
		celda{"Instalación", 1, align.Center},
		celda{"Vence", 1, align.Center},
		celda{"Días", 1, align.Right},
		celda{"Estado", 2, align.Center},
	))

	for _, fila := range reporte.Renovaciones {
		colorEstado := colorGray
		if fila.DiasRestantes <= 15 {
			colorEstado = colorAlerta
		}
		m.AddRows(row.New(6).Add(
			celdaTexto(fila.Comercializadora, 2, align.Left, nil),
			celdaTexto(fila.NumeroFactura, 1, align.Left, nil),
			celdaTexto(fila.Cliente, 3, align.Left, nil),
			celdaTexto(fila.Placa, 1, align.Center, nil),
			celdaTexto(fila.FechaEntrega.Format(), 1, align.Center, nil),
			celdaTexto(fila.FechaVencimiento.Format(), 1, align.Center, nil),
			celdaTexto(fmt.Sprintf("%d", fila.DiasRestantes), 1, align.Right, colorEstado),
			celdaTexto(etiquetaRenovacion(fila), 2, align.Center, colorEstado),
		))
	}

	return generar(m)
}

// Ganancia genera la tabla de utilidad del período con fila de totales.
func (g *MarotoReporteGenerator) Ganancia(reporte *dto.GananciaResponse) ([]byte, error) {
	m := nuevoDocumento("Reporte de ganancia")

	m.AddRows(tituloRow("GANANCIA DEL PERÍODO",
		fmt.Sprintf("Del %s al %s", reporte.Inicio.Format(), reporte.Fin.Format())))
	m.AddRows(cabeceraTabla(
		celda{"Fecha", 1, align.Center},
		celda{"Comercializadora", 2, align.Left},
		celda{"N° Factura", 2, align.Left},
		celda{"Cliente", 3, align.Left},
		celda{"Valor total", 1, align.Right},
		celda{"Comisión", 1, align.Right},
		celda{"IVA total", 1, align.Right},
		celda{"Ganancia", 1, align.Right},
	))

	for _, fila := range reporte.Filas {
		m.AddRows(row.New(6).Add(
			celdaTexto(fila.FechaFactura.Format(), 1, align.Center, nil),
			celdaTexto(fila.Comercializadora, 2, align.Left, nil),
			celdaTexto(fila.NumeroFactura, 2, align.Left, nil),
			celdaTexto(fila.Cliente, 3, align.Left, nil),
			celdaTexto(moneda.Formatear(fila.ValorTotal), 1, align.Right, nil),
			celdaTexto(moneda.Formatear(fila.ComisionVal), 1, align.Right, nil),
			celdaTexto(moneda.Formatear(fila.TotalIva), 1, align.Right, nil),
			celdaTexto(moneda.Formatear(fila.Ganancia), 1, align.Right, nil),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(row.New(7).Add(
		col.New(8).Add(text.New("TOTALES", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1, Right: 2,
		})),
		celdaTotal(moneda.Formatear(reporte.Totales.ValorTotal)),
		celdaTotal(moneda.Formatear(reporte.Totales.ComisionVal)),
		celdaTotal(moneda.Formatear(reporte.Totales.TotalIva)),
		celdaTotal(moneda.Formatear(reporte.Totales.Ganancia)),
	))

	return generar(m)
}

// Vehiculos genera el informe de instalación y pago.
func (g *MarotoReporteGenerator) Vehiculos(reporte *dto.VehiculosResponse) ([]byte, error) {
	m := nuevoDocumento("Informe de vehículos")

	m.AddRows(tituloRow("INFORME DE VEHÍCULOS",
		fmt.Sprintf("Total: %d   |   Instalados: %d   |   Pendientes: %d",
			reporte.Total, reporte.Instalados, reporte.Pendientes)))
	m.AddRows(cabeceraTabla(
		celda{"Comercializadora", 2, align.Left},
		celda{"N° Factura", 1, align.Left},
		celda{"Cliente", 3, align.Left},
		celda{"Placa", 1, align.Center},
		celda{"Ciudad", 2, align.Left},
		celda{"Instalación", 1, align.Center},
		celda{"Pagada", 1, align.Center},
		celda{"Valor", 1, align.Right},
	))

	for _, fila := range reporte.Filas {
		instalacion := "Pendiente"
		if fila.Instalado {
			instalacion = fila.FechaEntrega.Format()
		}
		m.AddRows(row.New(6).Add(
			celdaTexto(fila.Comercializadora, 2, align.Left, nil),
			celdaTexto(fila.NumeroFactura, 1, align.Left, nil),
			celdaTexto(fila.Cliente, 3, align.Left, nil),
			celdaTexto(fila.Placa, 1, align.Center, nil),
			celdaTexto(fila.Ciudad, 2, align.Left, nil),
			celdaTexto(instalacion, 1, align.Center, nil),
			celdaTexto(siNo(fila.Pagada), 1, align.Center, nil),
			celdaTexto(moneda.Formatear(fila.ValorTotal), 1, align.Right, nil),
		))
	}

	return generar(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func nuevoDocumento(titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(titulo, true).
		Build()
	return maroto.New(cfg)
}

// tituloRow: título del reporte (izq) y fecha de emisión + resumen (der).
func tituloRow(titulo, resumen string) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(resumen, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Emitido: "+fecha.Hoy().Format(), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

type celda struct {
	etiqueta string
	ancho    int
	alinear  align.Type
}

func cabeceraTabla(celdas ...celda) core.Row {
	cols := make([]core.Col, 0, len(celdas))
	for _, c := range celdas {
		cols = append(cols, col.New(c.ancho).Add(text.New(c.etiqueta, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: c.alinear,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(7).Add(cols...)
}

func celdaTexto(valor string, ancho int, alinear align.Type, color *props.Color) core.Col {
	p := props.Text{Size: 7.5, Align: alinear, Top: 1, Left: 1, Right: 1}
	if color != nil {
		p.Color = color
	}
	return col.New(ancho).Add(text.New(valor, p))
}

func celdaTotal(valor string) core.Col {
	return col.New(1).Add(text.New(valor, props.Text{
		Style: fontstyle.Bold, Size: 7.5, Align: align.Right,
		Color: colorPrimary, Top: 1, Right: 1,
	}))
}

func generar(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func etiquetaRenovacion(fila dto.RenovacionResponse) string {
	if fila.NoDeseaRenovar {
		return fila.Estado + " (no renovará)"
	}
	return fila.Estado
}

func siNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
