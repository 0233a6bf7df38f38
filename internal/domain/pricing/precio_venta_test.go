package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerpro/repuestos-api/internal/domain/pricing"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCalcularPrecioVenta_CasosConocidos(t *testing.T) {
	casos := []struct {
		nombre     string
		compra     *decimal.Decimal
		porcentaje *decimal.Decimal
		esperado   string
	}{
		{"ganancia 20% sobre 100", dec("100"), dec("20"), "120.00"},
		{"redondeo a 2 decimales", dec("99.99"), dec("15"), "114.99"},
		{"ganancia cero", dec("50"), dec("0"), "50.00"},
		{"porcentaje fraccional", dec("10"), dec("40.50"), "14.05"},
		{"precio cero", dec("0"), dec("35"), "0.00"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			out := pricing.CalcularPrecioVenta(c.compra, c.porcentaje)
			require.NotNil(t, out, "con ambos insumos debe calcularse el precio")
			assert.Equal(t, c.esperado, out.StringFixed(2))
		})
	}
}

func TestCalcularPrecioVenta_InsumosFaltantes(t *testing.T) {
	assert.Nil(t, pricing.CalcularPrecioVenta(nil, dec("20")),
		"sin precio de compra no hay precio sugerido")
	assert.Nil(t, pricing.CalcularPrecioVenta(dec("100"), nil),
		"sin porcentaje de ganancia no hay precio sugerido")
	assert.Nil(t, pricing.CalcularPrecioVenta(nil, nil))
}

// El cálculo debe ser idempotente: recalcular sobre el mismo insumo produce
// exactamente el mismo resultado (se recalcula en creación y actualización).
func TestCalcularPrecioVenta_Idempotente(t *testing.T) {
	a := pricing.CalcularPrecioVenta(dec("99.99"), dec("15"))
	b := pricing.CalcularPrecioVenta(dec("99.99"), dec("15"))
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.True(t, a.Equal(*b))
}
