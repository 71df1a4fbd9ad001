package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// Categorías de producto de la frutería.
const (
	CategoriaFrutas   = "Frutas"
	CategoriaVerduras = "Verduras"
)

// Unidades de medida admitidas.
const (
	UnidadKg    = "kg"
	UnidadPieza = "pieza"
	UnidadCaja  = "caja"
)

// Producto representa un producto del inventario de la frutería.
// Invariante: Stock >= 0 después de cada movimiento confirmado; el stock se
// ajusta de forma incremental al registrar o eliminar entradas y salidas.
type Producto struct {
	ID             string
	Nombre         string
	Categoria      string          // Frutas | Verduras
	Precio         decimal.Decimal // precio de venta, 2 decimales
	Stock          decimal.Decimal
	Unidad         string // kg | pieza | caja
	FechaCaducidad fechas.Fecha
	Proveedor      string
}

// CategoriaValida indica si la categoría pertenece al catálogo.
func CategoriaValida(c string) bool {
	return c == CategoriaFrutas || c == CategoriaVerduras
}

// UnidadValida indica si la unidad de medida pertenece al catálogo.
func UnidadValida(u string) bool {
	return u == UnidadKg || u == UnidadPieza || u == UnidadCaja
}
