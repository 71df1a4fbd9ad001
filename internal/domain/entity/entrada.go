package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// Entrada registra un ingreso de stock de un producto (compra a proveedor).
// NombreProducto es una copia tomada al crear el movimiento: si el producto
// se renombra después, la entrada conserva el nombre original como registro
// histórico. Una entrada es inmutable; solo puede eliminarse, lo que revierte
// su efecto sobre el stock.
type Entrada struct {
	ID             string
	ProductoID     string
	NombreProducto string
	Cantidad       decimal.Decimal // siempre positiva
	Fecha          fechas.Fecha
	Proveedor      string
	PrecioCompra   decimal.Decimal // precio unitario de compra
}
