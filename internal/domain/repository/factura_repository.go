package repository

import (
	"github.com/tu-usuario/facturas-rastreo/internal/domain/entity"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

// FacturaRepository define el puerto de persistencia para Factura.
// El almacén es una colección de documentos sin control de concurrencia
// optimista: gana la última escritura.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	// Update reemplaza el registro completo; los campos derivados ya
	// vienen recalculados por el caso de uso.
	Update(factura *entity.Factura) error
	Delete(id string) error
	GetByID(id string) (*entity.Factura, error)
	// ListAll devuelve todas las facturas ordenadas por fecha de factura
	// descendente (el orden numérico para listados lo aplica la capa de
	// aplicación).
	ListAll() ([]entity.Factura, error)
	// ListByDateRange filtra por fecha de factura, inclusive del día
	// final completo.
	ListByDateRange(inicio, fin fecha.Fecha) ([]entity.Factura, error)
}
