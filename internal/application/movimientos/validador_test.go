package movimientos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruteria-api/internal/application/movimientos"
	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
)

func entradaValida() movimientos.EntradaInput {
	return movimientos.EntradaInput{
		ProductoID:   "p-1",
		Cantidad:     decimal.NewFromInt(5),
		Fecha:        hoy,
		Proveedor:    "Huerta El Paraíso",
		PrecioCompra: decimal.RequireFromString("30.00"),
	}
}

func salidaValida() movimientos.SalidaInput {
	return movimientos.SalidaInput{
		ProductoID: "p-1",
		Cantidad:   decimal.NewFromInt(5),
		Fecha:      hoy,
		Motivo:     entity.MotivoVenta,
		Cliente:    "Mercado Central",
	}
}

func TestValidarEntrada_CamposInvalidos(t *testing.T) {
	v := movimientos.NewValidador(newMemProductos(manzana()))

	casos := []struct {
		nombre  string
		mutar   func(*movimientos.EntradaInput)
		mensaje string
	}{
		{
			"cantidad cero",
			func(in *movimientos.EntradaInput) { in.Cantidad = decimal.Zero },
			"la cantidad debe ser mayor a 0",
		},
		{
			"cantidad negativa",
			func(in *movimientos.EntradaInput) { in.Cantidad = decimal.NewFromInt(-3) },
			"la cantidad debe ser mayor a 0",
		},
		{
			"proveedor muy corto",
			func(in *movimientos.EntradaInput) { in.Proveedor = "ab" },
			"el nombre del proveedor debe tener al menos 3 caracteres",
		},
		{
			"precio de compra cero",
			func(in *movimientos.EntradaInput) { in.PrecioCompra = decimal.Zero },
			"el precio de compra debe ser mayor a 0",
		},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := entradaValida()
			c.mutar(&in)
			_, err := v.ValidarEntrada(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, c.mensaje, err.Error())
		})
	}
}

func TestValidarEntrada_ProveedorConAcentos(t *testing.T) {
	// El mínimo de 3 se cuenta en runas, no en bytes.
	v := movimientos.NewValidador(newMemProductos(manzana()))
	in := entradaValida()
	in.Proveedor = "ñáé"
	_, err := v.ValidarEntrada(in)
	assert.NoError(t, err)
}

func TestValidarSalida_CamposInvalidos(t *testing.T) {
	v := movimientos.NewValidador(newMemProductos(manzana()))

	casos := []struct {
		nombre  string
		mutar   func(*movimientos.SalidaInput)
		mensaje string
	}{
		{
			"cantidad cero",
			func(in *movimientos.SalidaInput) { in.Cantidad = decimal.Zero },
			"la cantidad debe ser mayor a 0",
		},
		{
			"motivo fuera del catálogo",
			func(in *movimientos.SalidaInput) { in.Motivo = "Regalo" },
			`motivo de salida no válido: "Regalo"`,
		},
		{
			"cliente muy corto",
			func(in *movimientos.SalidaInput) { in.Cliente = "ab" },
			"el nombre del cliente o destino debe tener al menos 3 caracteres",
		},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := salidaValida()
			c.mutar(&in)
			_, err := v.ValidarSalida(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, c.mensaje, err.Error())
		})
	}
}

func TestValidarSalida_TodosLosMotivos(t *testing.T) {
	v := movimientos.NewValidador(newMemProductos(manzana()))
	for _, motivo := range []string{entity.MotivoVenta, entity.MotivoMerma, entity.MotivoUsoInterno, entity.MotivoDonacion} {
		in := salidaValida()
		in.Motivo = motivo
		_, err := v.ValidarSalida(in)
		assert.NoError(t, err, "motivo %q debe ser válido", motivo)
	}
}

func TestValidarSalida_ResuelveElProducto(t *testing.T) {
	v := movimientos.NewValidador(newMemProductos(manzana()))

	producto, err := v.ValidarSalida(salidaValida())
	require.NoError(t, err)
	assert.Equal(t, "Manzana Roja", producto.Nombre)

	in := salidaValida()
	in.ProductoID = "no-existe"
	_, err = v.ValidarSalida(in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidarReversionEntrada(t *testing.T) {
	v := movimientos.NewValidador(newMemProductos())
	p := manzana() // stock 10

	ok := &entity.Entrada{Cantidad: decimal.NewFromInt(10)}
	assert.NoError(t, v.ValidarReversionEntrada(ok, p), "revertir exactamente el stock es válido")

	excede := &entity.Entrada{Cantidad: decimal.NewFromInt(11)}
	err := v.ValidarReversionEntrada(excede, p)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
