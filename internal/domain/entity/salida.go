package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// Motivos de salida de inventario.
const (
	MotivoVenta      = "Venta"
	MotivoMerma      = "Merma"
	MotivoUsoInterno = "Uso Interno"
	MotivoDonacion   = "Donación"
)

// Salida registra un egreso de stock de un producto. Igual que Entrada,
// NombreProducto es una copia tomada al crear el movimiento y el registro es
// inmutable salvo eliminación (que devuelve la cantidad al stock).
type Salida struct {
	ID             string
	ProductoID     string
	NombreProducto string
	Cantidad       decimal.Decimal // siempre positiva
	Fecha          fechas.Fecha
	Motivo         string // Venta | Merma | Uso Interno | Donación
	Cliente        string // cliente o destino
}

// MotivoValido indica si el motivo pertenece al catálogo.
func MotivoValido(m string) bool {
	switch m {
	case MotivoVenta, MotivoMerma, MotivoUsoInterno, MotivoDonacion:
		return true
	}
	return false
}
