// Package reportes implementa los reportes derivados del registro de
// facturas: cortes semestrales de IVA, renovaciones por vencer, ganancia
// por período e informe de vehículos. Todos son agregados de lectura; no
// persisten nada.
package reportes

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/busqueda"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/calculo"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/repository"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// UseCase casos de uso de reportes.
type UseCase struct {
	facturaRepo repository.FacturaRepository
	pdf         ReportePDFGenerator
	ats         ATSBuilder

	// hoy se inyecta para que los tests fijen la fecha de referencia.
	hoy func() fecha.Fecha
}

func NewUseCase(facturaRepo repository.FacturaRepository, pdf ReportePDFGenerator, ats ATSBuilder) *UseCase {
	return &UseCase{
		facturaRepo: facturaRepo,
		pdf:         pdf,
		ats:         ats,
		hoy:         fecha.Hoy,
	}
}

// CortesIva devuelve todos los cortes semestrales, ascendentes por inicio
// de ventana, cada uno con su IVA total y sus facturas.
func (uc *UseCase) CortesIva(ctx context.Context) ([]dto.CorteSemestralResponse, error) {
	facturas, err := uc.facturaRepo.ListAll()
	if err != nil {
		return nil, err
	}
	cortes := calculo.AgruparCortesSemestrales(facturas)

	out := make([]dto.CorteSemestralResponse, 0, len(cortes))
	for _, c := range cortes {
		out = append(out, dto.CorteSemestralResponse{
			Etiqueta: c.Periodo.Etiqueta(),
			Inicio:   c.Periodo.Inicio,
			Fin:      c.Periodo.Fin,
			TotalIva: c.TotalIva,
			Facturas: facturasADTO(c.Facturas),
		})
	}
	return out, nil
}

// TotalIvaPeriodo suma el IVA de las facturas de un rango arbitrario,
// ambos extremos inclusive.
func (uc *UseCase) TotalIvaPeriodo(ctx context.Context, inicio, fin fecha.Fecha) (*dto.TotalIvaPeriodoResponse, error) {
	if inicio.EsCero() || fin.EsCero() || fin.Antes(inicio) {
		return nil, domain.ErrFechaInvalida
	}
	facturas, err := uc.facturaRepo.ListByDateRange(inicio, fin)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for i := range facturas {
		total = total.Add(facturas[i].TotalIva)
	}
	return &dto.TotalIvaPeriodoResponse{
		Inicio:   inicio,
		Fin:      fin,
		TotalIva: total,
		Cantidad: len(facturas),
	}, nil
}

// Renovaciones arma el reporte de vencimientos. Solo entran facturas con
// fecha de entrega (vehículo instalado); las demás se cuentan aparte para
// que el operador sepa cuántas quedan fuera. El listado va ascendente por
// días restantes: lo más urgente primero.
func (uc *UseCase) Renovaciones(ctx context.Context, filtros dto.RenovacionesFiltro) (*dto.RenovacionesResponse, error) {
	estadoFiltro, err := estadoDeFiltro(filtros.Estado)
	if err != nil {
		return nil, err
	}
	if err := validarFiltroRenovacion(filtros.Renovacion); err != nil {
		return nil, err
	}

	facturas, err := uc.facturaRepo.ListAll()
	if err != nil {
		return nil, err
	}

	hoy := uc.hoy()
	resp := &dto.RenovacionesResponse{Renovaciones: []dto.RenovacionResponse{}}
	for i := range facturas {
		f := &facturas[i]
		if !f.Instalada() {
			resp.SinFechaEntrega++
			continue
		}
		resp.TotalInstaladas++

		venc, exacto := calculo.FechaVencimiento(f.FechaEntrega(), f.AnosServicio)
		if !exacto {
			log.Warn().
				Str("factura_id", f.ID).
				Str("anos_servicio", string(f.AnosServicio)).
				Msg("plan sin duración decodificable; vencimiento asumido a 1 año")
		}
		dias := calculo.DiasRestantes(venc, hoy)
		estado := calculo.ClasificarRenovacion(dias)

		if estadoFiltro != "" && estado != estadoFiltro {
			continue
		}
		switch filtros.Renovacion {
		case "renovaran":
			if f.NoDeseaRenovar {
				continue
			}
		case "no_renovaran":
			if !f.NoDeseaRenovar {
				continue
			}
		}

		fila := dto.RenovacionResponse{
			FacturaID:        f.ID,
			Comercializadora: f.Comercializadora,
			NumeroFactura:    f.NumeroFactura,
			Cliente:          f.Cliente,
			FechaEntrega:     f.FechaEntrega(),
			FechaVencimiento: venc,
			DiasRestantes:    dias,
			Estado:           string(estado),
			NoDeseaRenovar:   f.NoDeseaRenovar,
			ValorTotal:       f.ValorTotal,
		}
		if f.DatosVehiculo != nil {
			fila.Placa = f.DatosVehiculo.Placa
		}
		resp.Renovaciones = append(resp.Renovaciones, fila)
	}

	ordenarPorDiasRestantes(resp.Renovaciones)
	return resp, nil
}

// Ganancia arma el reporte de utilidad de un período: este mes, el mes
// anterior o un rango explícito.
func (uc *UseCase) Ganancia(ctx context.Context, filtro dto.GananciaFiltro) (*dto.GananciaResponse, error) {
	inicio, fin, err := uc.resolverPeriodo(filtro)
	if err != nil {
		return nil, err
	}

	facturas, err := uc.facturaRepo.ListByDateRange(inicio, fin)
	if err != nil {
		return nil, err
	}
	dentro := calculo.FiltrarPorPeriodo(facturas, inicio, fin)

	resp := &dto.GananciaResponse{
		Inicio: inicio,
		Fin:    fin,
		Filas:  make([]dto.GananciaFila, 0, len(dentro)),
	}
	for i := range dentro {
		f := &dentro[i]
		ganancia := calculo.Ganancia(f)
		resp.Filas = append(resp.Filas, dto.GananciaFila{
			FacturaID:        f.ID,
			FechaFactura:     f.FechaFactura,
			Comercializadora: f.Comercializadora,
			NumeroFactura:    f.NumeroFactura,
			Cliente:          f.Cliente,
			ValorTotal:       f.ValorTotal,
			ComisionVal:      f.ComisionVal,
			TotalIva:         f.TotalIva,
			Ganancia:         ganancia,
		})
		resp.Totales.ValorTotal = resp.Totales.ValorTotal.Add(f.ValorTotal)
		resp.Totales.ComisionVal = resp.Totales.ComisionVal.Add(f.ComisionVal)
		resp.Totales.TotalIva = resp.Totales.TotalIva.Add(f.TotalIva)
		resp.Totales.Ganancia = resp.Totales.Ganancia.Add(ganancia)
	}
	return resp, nil
}

// Vehiculos arma el informe de instalación y pago, con búsqueda
// insensible a acentos sobre placa, cliente y ciudad.
func (uc *UseCase) Vehiculos(ctx context.Context, filtros dto.VehiculosFiltro) (*dto.VehiculosResponse, error) {
	switch filtros.Instalacion {
	case "", "todas", "pendientes", "instalados":
	default:
		return nil, domain.ErrInvalidInput
	}
	switch filtros.Pago {
	case "", "todas", "pagadas", "pendientes":
	default:
		return nil, domain.ErrInvalidInput
	}

	facturas, err := uc.facturaRepo.ListAll()
	if err != nil {
		return nil, err
	}
	calculo.OrdenarPorNumeroFactura(facturas)

	resp := &dto.VehiculosResponse{Filas: []dto.VehiculoFila{}}
	for i := range facturas {
		f := &facturas[i]
		instalada := f.Instalada()

		if filtros.Instalacion == "pendientes" && instalada {
			continue
		}
		if filtros.Instalacion == "instalados" && !instalada {
			continue
		}
		if filtros.Pago == "pagadas" && !f.Pagada {
			continue
		}
		if filtros.Pago == "pendientes" && f.Pagada {
			continue
		}

		var placa, ciudad string
		if f.DatosVehiculo != nil {
			placa = f.DatosVehiculo.Placa
			ciudad = f.DatosVehiculo.Ciudad
		}
		if !busqueda.Coincide(placa, filtros.Placa) ||
			!busqueda.Coincide(f.Cliente, filtros.Cliente) ||
			!busqueda.Coincide(ciudad, filtros.Ciudad) {
			continue
		}

		resp.Filas = append(resp.Filas, dto.VehiculoFila{
			FacturaID:        f.ID,
			Comercializadora: f.Comercializadora,
			NumeroFactura:    f.NumeroFactura,
			Cliente:          f.Cliente,
			Placa:            placa,
			Ciudad:           ciudad,
			FechaEntrega:     f.FechaEntrega(),
			Instalado:        instalada,
			Pagada:           f.Pagada,
			ValorTotal:       f.ValorTotal,
		})
		resp.Total++
		if instalada {
			resp.Instalados++
		} else {
			resp.Pendientes++
		}
	}
	return resp, nil
}

// RenovacionesPDF genera la versión imprimible del reporte de renovaciones.
func (uc *UseCase) RenovacionesPDF(ctx context.Context, filtros dto.RenovacionesFiltro) ([]byte, error) {
	reporte, err := uc.Renovaciones(ctx, filtros)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Renovaciones(reporte)
}

// GananciaPDF genera la versión imprimible del reporte de ganancia.
func (uc *UseCase) GananciaPDF(ctx context.Context, filtro dto.GananciaFiltro) ([]byte, error) {
	reporte, err := uc.Ganancia(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Ganancia(reporte)
}

// VehiculosPDF genera la versión imprimible del informe de vehículos.
func (uc *UseCase) VehiculosPDF(ctx context.Context, filtros dto.VehiculosFiltro) ([]byte, error) {
	reporte, err := uc.Vehiculos(ctx, filtros)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Vehiculos(reporte)
}

// ExportarATS serializa el corte semestral que contiene la fecha dada al
// XML del ATS. Un semestre sin facturas produce un anexo vacío válido.
func (uc *UseCase) ExportarATS(ctx context.Context, enSemestre fecha.Fecha) ([]byte, error) {
	if enSemestre.EsCero() {
		return nil, domain.ErrFechaInvalida
	}
	periodo := calculo.PeriodoSemestral(enSemestre)

	facturas, err := uc.facturaRepo.ListByDateRange(periodo.Inicio, periodo.Fin)
	if err != nil {
		return nil, err
	}

	corte := calculo.CorteSemestral{Periodo: periodo}
	for _, c := range calculo.AgruparCortesSemestrales(facturas) {
		if c.Periodo.Inicio == periodo.Inicio {
			corte = c
			break
		}
	}
	return uc.ats.Construir(corte)
}

func (uc *UseCase) resolverPeriodo(filtro dto.GananciaFiltro) (inicio, fin fecha.Fecha, err error) {
	switch filtro.Periodo {
	case "", "este_mes":
		hoy := uc.hoy()
		return hoy.InicioMes(), hoy.FinMes(), nil
	case "mes_anterior":
		anterior := uc.hoy().InicioMes().AddMeses(-1)
		return anterior, anterior.FinMes(), nil
	case "rango":
		inicio, err = fecha.Parse(filtro.Inicio)
		if err != nil {
			return fecha.Fecha{}, fecha.Fecha{}, domain.ErrFechaInvalida
		}
		fin, err = fecha.Parse(filtro.Fin)
		if err != nil {
			return fecha.Fecha{}, fecha.Fecha{}, domain.ErrFechaInvalida
		}
		if fin.Antes(inicio) {
			return fecha.Fecha{}, fecha.Fecha{}, domain.ErrFechaInvalida
		}
		return inicio, fin, nil
	default:
		return fecha.Fecha{}, fecha.Fecha{}, domain.ErrInvalidInput
	}
}

func estadoDeFiltro(s string) (calculo.EstadoRenovacion, error) {
	switch s {
	case "", "todas":
		return "", nil
	case "proximas":
		return calculo.EstadoProximoAVencer, nil
	case "vencidas":
		return calculo.EstadoVencido, nil
	case "vigentes":
		return calculo.EstadoVigente, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

func validarFiltroRenovacion(s string) error {
	switch s {
	case "", "todas", "renovaran", "no_renovaran":
		return nil
	default:
		return domain.ErrInvalidInput
	}
}

func ordenarPorDiasRestantes(filas []dto.RenovacionResponse) {
	sort.SliceStable(filas, func(i, j int) bool {
		return filas[i].DiasRestantes < filas[j].DiasRestantes
	})
}

func facturasADTO(facturas []entity.Factura) []dto.FacturaResponse {
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for i := range facturas {
		f := &facturas[i]
		resp := dto.FacturaResponse{
			ID:                f.ID,
			Comercializadora:  f.Comercializadora,
			NumeroFactura:     f.NumeroFactura,
			ValorTotal:        f.ValorTotal,
			AnosServicio:      f.AnosServicio,
			FechaFactura:      f.FechaFactura,
			Cliente:           f.Cliente,
			ValorFijo:         f.ValorFijo,
			Excedente:         f.Excedente,
			IvaExcedente:      f.IvaExcedente,
			ComisionVal:       f.ComisionVal,
			IvaGananciaPropia: f.IvaGananciaPropia,
			TotalIva:          f.TotalIva,
			Pagada:            f.Pagada,
			NoDeseaRenovar:    f.NoDeseaRenovar,
		}
		if f.DatosVehiculo != nil {
			v := f.DatosVehiculo
			resp.DatosVehiculo = &dto.DatosVehiculoDTO{
				Modelo:    v.Modelo,
				Ano:       v.Ano,
				Tipo:      v.Tipo,
				Placa:     v.Placa,
				Color:     v.Color,
				Ciudad:    v.Ciudad,
				Direccion: v.Direccion,
				Telefono:  v.Telefono,
			}
			if v.FechaEntrega != nil {
				resp.DatosVehiculo.FechaEntrega = *v.FechaEntrega
			}
		}
		out = append(out, resp)
	}
	return out
}
