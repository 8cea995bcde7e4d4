// Package plan define los planes de servicio del contrato de rastreo
// vehicular: duración en años (1 a 3) con variante regional Cayambe, que
// lleva un recargo fijo de $20 sobre el valor fijo del plan base.
package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
)

// PlanServicio es el código de plan. Solo existen los seis valores
// declarados abajo; cualquier otro string es inválido.
type PlanServicio string

const (
	Plan1        PlanServicio = "1"
	Plan2        PlanServicio = "2"
	Plan3        PlanServicio = "3"
	Plan1Cayambe PlanServicio = "1-cayambe"
	Plan2Cayambe PlanServicio = "2-cayambe"
	Plan3Cayambe PlanServicio = "3-cayambe"
)

// Tabla mapea cada plan a su valor fijo (incluye IVA). Se pasa como
// argumento al motor de valoración para que los tests puedan sustituirla.
type Tabla map[PlanServicio]decimal.Decimal

// ValoresFijos es la tabla vigente. Cerrada: nunca se calcula ni se muta
// en runtime.
var ValoresFijos = Tabla{
	Plan1:        decimal.NewFromInt(208),
	Plan2:        decimal.NewFromInt(301),
	Plan3:        decimal.NewFromInt(394),
	Plan1Cayambe: decimal.NewFromInt(228), // 208 + 20
	Plan2Cayambe: decimal.NewFromInt(321), // 301 + 20
	Plan3Cayambe: decimal.NewFromInt(414), // 394 + 20
}

// Todos lista los seis códigos válidos en orden estable.
var Todos = []PlanServicio{Plan1, Plan2, Plan3, Plan1Cayambe, Plan2Cayambe, Plan3Cayambe}

// Normalizar canonicaliza un código de plan leído de almacenamiento o de
// un cliente. Cualquier código fuera del conjunto cerrado falla con
// ErrPlanDesconocido: el único camino permisivo es la coerción numérica
// legada de UnmarshalJSON.
func Normalizar(s string) (PlanServicio, error) {
	v := PlanServicio(strings.TrimSpace(s))
	if v.Valido() {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrPlanDesconocido, s)
}

// UnmarshalJSON acepta el código como string JSON o, por compatibilidad
// con registros antiguos que guardaban la duración como entero, como
// número JSON (1, 2, 3). La coerción numérica solo recupera los planes
// base: un registro antiguo que en realidad era Cayambe es indistinguible
// y quedará mal tarifado; se registra como anomalía al cargarlo, nunca se
// "corrige" en silencio.
func (p *PlanServicio) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		normalizado, errN := Normalizar(s)
		if errN != nil {
			return errN
		}
		*p = normalizado
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrPlanDesconocido, string(data))
	}
	normalizado, err := Normalizar(fmt.Sprintf("%d", n))
	if err != nil {
		return err
	}
	*p = normalizado
	return nil
}

// Valido reporta si el código pertenece al conjunto cerrado de planes.
func (p PlanServicio) Valido() bool {
	_, ok := ValoresFijos[p]
	return ok
}

// Duracion extrae los años de servicio del código: dígito inicial con el
// sufijo "-cayambe" descartado. Si el código no decodifica a un valor en
// [1,3] retorna 1 con exacto=false y el caller debe registrarlo como
// anomalía.
func (p PlanServicio) Duracion() (anios int, exacto bool) {
	base, _, _ := strings.Cut(string(p), "-")
	switch base {
	case "1":
		return 1, true
	case "2":
		return 2, true
	case "3":
		return 3, true
	}
	return 1, false
}
