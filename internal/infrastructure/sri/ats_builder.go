// Package sri genera el XML del Anexo Transaccional Simplificado (ATS)
// para un corte semestral de IVA. El anexo va sin firmar: el portal del
// SRI acepta la carga del archivo plano.
package sri

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/tu-usuario/facturas-rastreo/internal/application/reportes"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/calculo"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
)

var _ reportes.ATSBuilder = (*ATSBuilder)(nil)

// ATSBuilder serializa cortes semestrales al XML del anexo.
type ATSBuilder struct {
	// RUC del contribuyente que declara; acompaña la cabecera del anexo.
	RUC string
}

// NewATSBuilder construye el builder con el RUC del declarante.
func NewATSBuilder(ruc string) *ATSBuilder {
	return &ATSBuilder{RUC: ruc}
}

// Construir genera el documento del semestre. Un corte sin facturas
// produce un anexo con totales en cero, que sigue siendo una declaración
// válida.
func (b *ATSBuilder) Construir(corte calculo.CorteSemestral) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	iva := doc.CreateElement("iva")
	iva.CreateElement("numeroRuc").SetText(b.RUC)
	iva.CreateElement("anio").SetText(fmt.Sprintf("%d", corte.Periodo.Inicio.Anio()))
	iva.CreateElement("semestre").SetText(corte.Periodo.Etiqueta())
	iva.CreateElement("fechaInicio").SetText(corte.Periodo.Inicio.String())
	iva.CreateElement("fechaFin").SetText(corte.Periodo.Fin.String())
	iva.CreateElement("numeroComprobantes").SetText(fmt.Sprintf("%d", len(corte.Facturas)))
	iva.CreateElement("totalIva").SetText(corte.TotalIva.StringFixed(2))

	ventas := iva.CreateElement("ventas")
	for i := range corte.Facturas {
		agregarDetalle(ventas, &corte.Facturas[i])
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

func agregarDetalle(ventas *etree.Element, f *entity.Factura) {
	det := ventas.CreateElement("detalleVenta")
	det.CreateElement("fechaEmision").SetText(f.FechaFactura.String())
	det.CreateElement("numeroComprobante").SetText(f.NumeroFactura)
	det.CreateElement("comercializadora").SetText(f.Comercializadora)
	det.CreateElement("cliente").SetText(f.Cliente)
	det.CreateElement("valorTotal").SetText(f.ValorTotal.StringFixed(2))
	// Base imponible: lo facturado menos el IVA contenido.
	det.CreateElement("baseImponible").SetText(f.ValorTotal.Sub(f.TotalIva).StringFixed(2))
	det.CreateElement("montoIva").SetText(f.TotalIva.StringFixed(2))
}
