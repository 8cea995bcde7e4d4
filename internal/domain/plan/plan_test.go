package plan_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-rastreo/internal/domain"
	"github.com/tu-usuario/facturas-rastreo/internal/domain/plan"
)

func TestValoresFijos_TablaCerrada(t *testing.T) {
	esperados := map[plan.PlanServicio]int64{
		plan.Plan1: 208, plan.Plan2: 301, plan.Plan3: 394,
		plan.Plan1Cayambe: 228, plan.Plan2Cayambe: 321, plan.Plan3Cayambe: 414,
	}
	require.Len(t, plan.ValoresFijos, len(esperados))
	for p, v := range esperados {
		assert.True(t, plan.ValoresFijos[p].Equal(decimalInt(v)), "plan %s", p)
	}
}

func TestNormalizar(t *testing.T) {
	for _, p := range plan.Todos {
		got, err := plan.Normalizar(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := plan.Normalizar("4")
	assert.ErrorIs(t, err, domain.ErrPlanDesconocido)
	_, err = plan.Normalizar("")
	assert.ErrorIs(t, err, domain.ErrPlanDesconocido)
}

// TestUnmarshalJSON_NumeroLegado cubre el shim de compatibilidad: registros
// antiguos guardaban la duración como número. Solo recupera los planes
// base, nunca una variante Cayambe.
func TestUnmarshalJSON_NumeroLegado(t *testing.T) {
	var p plan.PlanServicio
	require.NoError(t, json.Unmarshal([]byte(`2`), &p))
	assert.Equal(t, plan.Plan2, p)

	require.NoError(t, json.Unmarshal([]byte(`"3-cayambe"`), &p))
	assert.Equal(t, plan.Plan3Cayambe, p)

	assert.Error(t, json.Unmarshal([]byte(`7`), &p))
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &p))
}

func TestDuracion(t *testing.T) {
	casos := []struct {
		p      plan.PlanServicio
		anios  int
		exacto bool
	}{
		{plan.Plan1, 1, true},
		{plan.Plan2, 2, true},
		{plan.Plan3, 3, true},
		{plan.Plan1Cayambe, 1, true},
		{plan.Plan2Cayambe, 2, true},
		{plan.Plan3Cayambe, 3, true},
		{plan.PlanServicio("garbage"), 1, false}, // fallback defensivo
		{plan.PlanServicio("9-cayambe"), 1, false},
	}
	for _, c := range casos {
		anios, exacto := c.p.Duracion()
		assert.Equal(t, c.anios, anios, "plan %s", c.p)
		assert.Equal(t, c.exacto, exacto, "plan %s", c.p)
	}
}

func decimalInt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
