package formato_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fruteria-api/pkg/formato"
)

func TestMoneda(t *testing.T) {
	assert.Equal(t, "$25.50 MXN", formato.Moneda(decimal.RequireFromString("25.5")))
	assert.Equal(t, "$1,234.50 MXN", formato.Moneda(decimal.RequireFromString("1234.50")))
	assert.Equal(t, "$0.00 MXN", formato.Moneda(decimal.Zero))
}

func TestMoneda_RedondeaADosDecimales(t *testing.T) {
	assert.Equal(t, "$10.57 MXN", formato.Moneda(decimal.RequireFromString("10.567")))
}

func TestCantidad(t *testing.T) {
	assert.Equal(t, "5 kg", formato.Cantidad(decimal.NewFromInt(5), "kg"))
	assert.Equal(t, "2.5 kg", formato.Cantidad(decimal.RequireFromString("2.5"), "kg"))
	assert.Equal(t, "12 pieza", formato.Cantidad(decimal.NewFromInt(12), "pieza"))
	assert.Equal(t, "3", formato.Cantidad(decimal.NewFromInt(3), ""), "sin unidad solo el número")
}
