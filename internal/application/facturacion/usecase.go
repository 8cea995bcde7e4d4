// Package facturacion contiene los casos de uso CRUD de facturas. La regla
// central: los campos derivados se recalculan en el servidor desde
// (valor_total, anos_servicio) en cada escritura, descartando cualquier
// valor que el cliente haya enviado, de modo que ningún lector pueda
// observar una factura con derivados inconsistentes con su propio total.
package facturacion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/application/dto"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/calculo"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/repository"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// UseCase casos de uso de facturación.
type UseCase struct {
	facturaRepo repository.FacturaRepository
	tabla       plan.Tabla
}

// NewUseCase construye el caso de uso. La tabla de valores fijos se
// inyecta para que los tests puedan sustituirla.
func NewUseCase(facturaRepo repository.FacturaRepository, tabla plan.Tabla) *UseCase {
	return &UseCase{facturaRepo: facturaRepo, tabla: tabla}
}

// Crear valida la entrada, calcula los derivados y persiste la factura.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	if in.Comercializadora == "" || in.NumeroFactura == "" || in.Cliente == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaFactura.EsCero() {
		return nil, domain.ErrFechaInvalida
	}
	if err := validarValorTotal(in.ValorTotal); err != nil {
		return nil, err
	}
	p, err := plan.Normalizar(string(in.AnosServicio))
	if err != nil {
		return nil, err
	}

	valores, err := calculo.CalcularValores(in.ValorTotal, p, uc.tabla)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	factura := &entity.Factura{
		ID:               uuid.New().String(),
		Comercializadora: in.Comercializadora,
		NumeroFactura:    in.NumeroFactura,
		ValorTotal:       in.ValorTotal,
		AnosServicio:     p,
		FechaFactura:     in.FechaFactura,
		Cliente:          in.Cliente,
		DatosVehiculo:    vehiculoDesdeDTO(in.DatosVehiculo),
		Pagada:           in.Pagada,
		NoDeseaRenovar:   in.NoDeseaRenovar,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	aplicarValores(factura, valores)

	if err := uc.facturaRepo.Create(factura); err != nil {
		return nil, err
	}
	return toResponse(factura), nil
}

// Actualizar aplica un cambio parcial. Si cambia el valor total o el plan,
// los derivados se recalculan y se escriben en la misma operación.
func (uc *UseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarFacturaRequest) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}

	if in.Comercializadora != nil {
		factura.Comercializadora = *in.Comercializadora
	}
	if in.NumeroFactura != nil {
		factura.NumeroFactura = *in.NumeroFactura
	}
	if in.Cliente != nil {
		factura.Cliente = *in.Cliente
	}
	if in.FechaFactura != nil {
		if in.FechaFactura.EsCero() {
			return nil, domain.ErrFechaInvalida
		}
		factura.FechaFactura = *in.FechaFactura
	}
	if in.Pagada != nil {
		factura.Pagada = *in.Pagada
	}
	if in.NoDeseaRenovar != nil {
		factura.NoDeseaRenovar = *in.NoDeseaRenovar
	}
	if in.DatosVehiculo != nil {
		factura.DatosVehiculo = vehiculoDesdeDTO(in.DatosVehiculo)
	}

	if in.ValorTotal != nil {
		if err := validarValorTotal(*in.ValorTotal); err != nil {
			return nil, err
		}
		factura.ValorTotal = *in.ValorTotal
	}
	if in.AnosServicio != nil {
		p, err := plan.Normalizar(string(*in.AnosServicio))
		if err != nil {
			return nil, err
		}
		factura.AnosServicio = p
	}

	// Recalcular siempre: es idempotente y garantiza que una edición de
	// total o plan nunca deje derivados viejos.
	valores, err := calculo.CalcularValores(factura.ValorTotal, factura.AnosServicio, uc.tabla)
	if err != nil {
		return nil, err
	}
	aplicarValores(factura, valores)
	factura.UpdatedAt = time.Now()

	if err := uc.facturaRepo.Update(factura); err != nil {
		return nil, err
	}
	return toResponse(factura), nil
}

// Eliminar borra la factura. Sin efectos en cascada.
func (uc *UseCase) Eliminar(ctx context.Context, id string) error {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if factura == nil {
		return domain.ErrNotFound
	}
	return uc.facturaRepo.Delete(id)
}

// Obtener devuelve una factura por ID.
func (uc *UseCase) Obtener(ctx context.Context, id string) (*dto.FacturaResponse, error) {
	factura, err := uc.facturaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if factura == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(factura), nil
}

// Listar devuelve todas las facturas en el orden del listado: número de
// factura numérico descendente (no el orden cronológico del almacén).
func (uc *UseCase) Listar(ctx context.Context) ([]dto.FacturaResponse, error) {
	facturas, err := uc.facturaRepo.ListAll()
	if err != nil {
		return nil, err
	}
	uc.auditarPlanes(facturas)
	calculo.OrdenarPorNumeroFactura(facturas)
	return toResponses(facturas), nil
}

// ListarPorPeriodo devuelve las facturas del rango [inicio, fin] (día
// final completo incluido), también en orden numérico descendente.
func (uc *UseCase) ListarPorPeriodo(ctx context.Context, inicio, fin fecha.Fecha) ([]dto.FacturaResponse, error) {
	if inicio.EsCero() || fin.EsCero() || fin.Antes(inicio) {
		return nil, domain.ErrFechaInvalida
	}
	facturas, err := uc.facturaRepo.ListByDateRange(inicio, fin)
	if err != nil {
		return nil, err
	}
	uc.auditarPlanes(facturas)
	calculo.OrdenarPorNumeroFactura(facturas)
	return toResponses(facturas), nil
}

// auditarPlanes registra como anomalía cualquier factura cargada con un
// código de plan fuera del conjunto cerrado (registros legados corruptos).
// No corrige nada: los registros numéricos antiguos que eran Cayambe son
// indistinguibles y deben resolverse a mano.
func (uc *UseCase) auditarPlanes(facturas []entity.Factura) {
	for i := range facturas {
		if !facturas[i].AnosServicio.Valido() {
			log.Warn().
				Str("factura_id", facturas[i].ID).
				Str("anos_servicio", string(facturas[i].AnosServicio)).
				Msg("plan de servicio fuera del catálogo; revisar registro legado")
		}
	}
}

// validarValorTotal rechaza montos negativos o con más de dos decimales.
// La columna valor_total es NUMERIC(12,2): un monto con más precisión se
// redondearía en silencio al persistir y los derivados guardados dejarían
// de coincidir con el recálculo sobre el valor almacenado.
func validarValorTotal(v decimal.Decimal) error {
	if v.IsNegative() || !v.Equal(v.Round(2)) {
		return domain.ErrInvalidInput
	}
	return nil
}

func aplicarValores(f *entity.Factura, v calculo.Valores) {
	f.ValorFijo = v.ValorFijo
	f.Excedente = v.Excedente
	f.IvaExcedente = v.IvaExcedente
	f.ComisionVal = v.ComisionVal
	f.IvaGananciaPropia = v.IvaGananciaPropia
	f.TotalIva = v.TotalIva
}

func vehiculoDesdeDTO(in *dto.DatosVehiculoDTO) *entity.DatosVehiculo {
	if in == nil {
		return nil
	}
	v := &entity.DatosVehiculo{
		Modelo:    in.Modelo,
		Ano:       in.Ano,
		Tipo:      in.Tipo,
		Placa:     in.Placa,
		Color:     in.Color,
		Ciudad:    in.Ciudad,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
	}
	if !in.FechaEntrega.EsCero() {
		fe := in.FechaEntrega
		v.FechaEntrega = &fe
	}
	if v.Vacio() {
		// Un bloque sin ningún dato equivale a quitarlo.
		return nil
	}
	return v
}

func vehiculoADTO(v *entity.DatosVehiculo) *dto.DatosVehiculoDTO {
	if v == nil {
		return nil
	}
	out := &dto.DatosVehiculoDTO{
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
		out.FechaEntrega = *v.FechaEntrega
	}
	return out
}

func toResponse(f *entity.Factura) *dto.FacturaResponse {
	return &dto.FacturaResponse{
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
		DatosVehiculo:     vehiculoADTO(f.DatosVehiculo),
		Pagada:            f.Pagada,
		NoDeseaRenovar:    f.NoDeseaRenovar,
	}
}

func toResponses(facturas []entity.Factura) []dto.FacturaResponse {
	out := make([]dto.FacturaResponse, 0, len(facturas))
	for i := range facturas {
		out = append(out, *toResponse(&facturas[i]))
	}
	return out
}
