package fecha_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturas-rastreo/pkg/fecha"
)

func TestParse_FechaLocal(t *testing.T) {
	f, err := fecha.Parse("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, f.Anio())
	assert.Equal(t, time.March, f.Mes())
	assert.Equal(t, 15, f.Dia())
}

// TestParse_DescartaHora verifica que un timestamp ISO se interpreta por su
// parte de fecha, sin corrimiento de día por zona horaria.
func TestParse_DescartaHora(t *testing.T) {
	f, err := fecha.Parse("2024-03-15T23:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", f.String())
}

func TestParse_Invalida(t *testing.T) {
	for _, s := range []string{"", "no-es-fecha", "2023-02-30", "15/03/2024"} {
		f, err := fecha.Parse(s)
		assert.Error(t, err, "Parse(%q) debe fallar", s)
		assert.True(t, f.EsCero())
	}
}

func TestFormat_DDMMYYYY(t *testing.T) {
	f, _ := fecha.Parse("2024-03-05")
	assert.Equal(t, "05/03/2024", f.Format())
}

func TestAddAnios(t *testing.T) {
	f, _ := fecha.Parse("2024-01-10")
	assert.Equal(t, "2025-01-10", f.AddAnios(1).String())
	assert.Equal(t, "2027-01-10", f.AddAnios(3).String())
}

// TestAddAnios_Bisiesto fija el comportamiento de borde: 29 de febrero + 1
// año normaliza al 1 de marzo (semántica de time.Date).
func TestAddAnios_Bisiesto(t *testing.T) {
	f, _ := fecha.Parse("2024-02-29")
	assert.Equal(t, "2025-03-01", f.AddAnios(1).String())
	// +4 años cae de nuevo en bisiesto y se conserva el día
	assert.Equal(t, "2028-02-29", f.AddAnios(4).String())
}

func TestInicioYFinMes(t *testing.T) {
	f, _ := fecha.Parse("2024-02-15")
	assert.Equal(t, "2024-02-01", f.InicioMes().String())
	assert.Equal(t, "2024-02-29", f.FinMes().String())

	g, _ := fecha.Parse("2023-02-10")
	assert.Equal(t, "2023-02-28", g.FinMes().String())
}

func TestAddMeses(t *testing.T) {
	f, _ := fecha.Parse("2024-03-15")
	assert.Equal(t, "2024-02-15", f.AddMeses(-1).String())
	assert.Equal(t, "2024-04-15", f.AddMeses(1).String())

	// enero - 1 mes cruza de año
	g, _ := fecha.Parse("2024-01-10")
	assert.Equal(t, "2023-12-10", g.AddMeses(-1).String())
}

func TestDiasHasta(t *testing.T) {
	a, _ := fecha.Parse("2024-12-27")
	b, _ := fecha.Parse("2025-01-10")
	assert.Equal(t, 14, a.DiasHasta(b))
	assert.Equal(t, -14, b.DiasHasta(a))
	assert.Equal(t, 0, a.DiasHasta(a))
}

func TestEnRango_Inclusivo(t *testing.T) {
	inicio, _ := fecha.Parse("2024-01-01")
	fin, _ := fecha.Parse("2024-06-30")
	dentro, _ := fecha.Parse("2024-06-30")
	fuera, _ := fecha.Parse("2024-07-01")
	assert.True(t, inicio.EnRango(inicio, fin))
	assert.True(t, dentro.EnRango(inicio, fin))
	assert.False(t, fuera.EnRango(inicio, fin))
}

func TestJSON_IdaYVuelta(t *testing.T) {
	f, _ := fecha.Parse("2024-07-01")
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-01"`, string(data))

	var otra fecha.Fecha
	require.NoError(t, json.Unmarshal(data, &otra))
	assert.Equal(t, f, otra)
}

func TestJSON_NullEsCero(t *testing.T) {
	var f fecha.Fecha
	require.NoError(t, json.Unmarshal([]byte("null"), &f))
	assert.True(t, f.EsCero())

	data, err := json.Marshal(fecha.Fecha{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
