package moneda_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/facturas-rastreo/pkg/moneda"
)

func TestFormatear_DosDecimales(t *testing.T) {
	assert.Equal(t, "$45,15", moneda.Formatear(decimal.RequireFromString("45.15")))
	assert.Equal(t, "$75,00", moneda.Formatear(decimal.RequireFromString("75")))
}

func TestFormatear_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "$1.234,56", moneda.Formatear(decimal.RequireFromString("1234.56")))
}

func TestFormatear_Negativo(t *testing.T) {
	assert.Equal(t, "$-12,50", moneda.Formatear(decimal.RequireFromString("-12.5")))
}
