package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/repository"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
// Los montos van en columnas NUMERIC y las fechas de calendario en DATE;
// el codec de decimal se registra en el pool, así que Scan entrega
// decimal.Decimal directo.
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const columnasFactura = `
	id, comercializadora, numero_factura, valor_total, anos_servicio,
	fecha_factura, cliente,
	valor_fijo, excedente, iva_excedente, comision_val, iva_ganancia_propia, total_iva,
	veh_modelo, veh_ano, veh_tipo, veh_placa, veh_color, veh_ciudad,
	veh_direccion, veh_telefono, fecha_entrega,
	pagada, no_desea_renovar, created_at, updated_at`

// Create persiste la factura con sus derivados ya calculados.
func (r *FacturaRepo) Create(f *entity.Factura) error {
	query := `
		INSERT INTO facturas (` + columnasFactura + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.q.Exec(context.Background(), query, argsFactura(f)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de factura ya existe: %w", err)
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// Update reescribe el registro completo (last-write-wins, sin lock optimista).
func (r *FacturaRepo) Update(f *entity.Factura) error {
	query := `
		UPDATE facturas SET
			comercializadora = $2, numero_factura = $3, valor_total = $4,
			anos_servicio = $5, fecha_factura = $6, cliente = $7,
			valor_fijo = $8, excedente = $9, iva_excedente = $10,
			comision_val = $11, iva_ganancia_propia = $12, total_iva = $13,
			veh_modelo = $14, veh_ano = $15, veh_tipo = $16, veh_placa = $17,
			veh_color = $18, veh_ciudad = $19, veh_direccion = $20,
			veh_telefono = $21, fecha_entrega = $22,
			pagada = $23, no_desea_renovar = $24, created_at = $25, updated_at = $26
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, argsFactura(f)...)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

// Delete elimina la factura por ID.
func (r *FacturaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID; nil sin error si no existe.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	query := `SELECT ` + columnasFactura + ` FROM facturas WHERE id = $1`
	f, err := scanFactura(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return f, nil
}

// ListAll devuelve todas las facturas, más recientes primero. El orden
// numérico por número de factura lo aplica la capa de aplicación.
func (r *FacturaRepo) ListAll() ([]entity.Factura, error) {
	query := `SELECT ` + columnasFactura + ` FROM facturas ORDER BY fecha_factura DESC, created_at DESC`
	return r.list(query)
}

// ListByDateRange devuelve las facturas con fecha en [inicio, fin].
func (r *FacturaRepo) ListByDateRange(inicio, fin fecha.Fecha) ([]entity.Factura, error) {
	query := `SELECT ` + columnasFactura + `
		FROM facturas
		WHERE fecha_factura BETWEEN $1 AND $2
		ORDER BY fecha_factura ASC`
	return r.list(query, inicio.Time(), fin.Time())
}

func (r *FacturaRepo) list(query string, args ...any) ([]entity.Factura, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()

	var list []entity.Factura
	for rows.Next() {
		f, err := scanFactura(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, *f)
	}
	return list, rows.Err()
}

func argsFactura(f *entity.Factura) []any {
	var vehModelo, vehTipo, vehPlaca, vehColor *string
	var vehCiudad, vehDireccion, vehTelefono *string
	var vehAno *int
	var fechaEntrega *time.Time
	if v := f.DatosVehiculo; v != nil {
		vehModelo = nullIfEmpty(v.Modelo)
		vehAno = v.Ano
		vehTipo = nullIfEmpty(v.Tipo)
		vehPlaca = nullIfEmpty(v.Placa)
		vehColor = nullIfEmpty(v.Color)
		vehCiudad = nullIfEmpty(v.Ciudad)
		vehDireccion = nullIfEmpty(v.Direccion)
		vehTelefono = nullIfEmpty(v.Telefono)
		if v.FechaEntrega != nil && !v.FechaEntrega.EsCero() {
			t := v.FechaEntrega.Time()
			fechaEntrega = &t
		}
	}
	return []any{
		f.ID, f.Comercializadora, f.NumeroFactura, f.ValorTotal, string(f.AnosServicio),
		f.FechaFactura.Time(), f.Cliente,
		f.ValorFijo, f.Excedente, f.IvaExcedente, f.ComisionVal, f.IvaGananciaPropia, f.TotalIva,
		vehModelo, vehAno, vehTipo, vehPlaca, vehColor, vehCiudad,
		vehDireccion, vehTelefono, fechaEntrega,
		f.Pagada, f.NoDeseaRenovar, f.CreatedAt, f.UpdatedAt,
	}
}

func scanFactura(row pgx.Row) (*entity.Factura, error) {
	var f entity.Factura
	var anosServicio string
	var fechaFactura time.Time
	var vehModelo, vehTipo, vehPlaca, vehColor *string
	var vehCiudad, vehDireccion, vehTelefono *string
	var vehAno *int
	var fechaEntrega *time.Time
	err := row.Scan(
		&f.ID, &f.Comercializadora, &f.NumeroFactura, &f.ValorTotal, &anosServicio,
		&fechaFactura, &f.Cliente,
		&f.ValorFijo, &f.Excedente, &f.IvaExcedente, &f.ComisionVal, &f.IvaGananciaPropia, &f.TotalIva,
		&vehModelo, &vehAno, &vehTipo, &vehPlaca, &vehColor, &vehCiudad,
		&vehDireccion, &vehTelefono, &fechaEntrega,
		&f.Pagada, &f.NoDeseaRenovar, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Normalización de planes en la frontera de carga: los registros
	// legados con código numérico entran canónicos al resto del sistema.
	// Un código fuera del catálogo se conserva tal cual para que la capa
	// de aplicación lo reporte como anomalía.
	if p, err := plan.Normalizar(anosServicio); err == nil {
		f.AnosServicio = p
	} else {
		f.AnosServicio = plan.PlanServicio(anosServicio)
	}
	f.FechaFactura = fecha.DesdeTime(fechaFactura)

	v := entity.DatosVehiculo{
		Modelo:    derefStr(vehModelo),
		Ano:       vehAno,
		Tipo:      derefStr(vehTipo),
		Placa:     derefStr(vehPlaca),
		Color:     derefStr(vehColor),
		Ciudad:    derefStr(vehCiudad),
		Direccion: derefStr(vehDireccion),
		Telefono:  derefStr(vehTelefono),
	}
	if fechaEntrega != nil {
		fe := fecha.DesdeTime(*fechaEntrega)
		v.FechaEntrega = &fe
	}
	if !v.Vacio() {
		f.DatosVehiculo = &v
	}
	return &f, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
