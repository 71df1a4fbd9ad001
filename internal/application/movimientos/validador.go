package movimientos

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// LongitudMinimaNombre mínimo de caracteres para proveedor y cliente/destino.
const LongitudMinimaNombre = 3

// EntradaInput datos para registrar una entrada.
type EntradaInput struct {
	ProductoID   string
	Cantidad     decimal.Decimal
	Fecha        fechas.Fecha
	Proveedor    string
	PrecioCompra decimal.Decimal
}

// SalidaInput datos para registrar una salida.
type SalidaInput struct {
	ProductoID string
	Cantidad   decimal.Decimal
	Fecha      fechas.Fecha
	Motivo     string
	Cliente    string
}

// Validador aplica las reglas de negocio de los movimientos antes de
// escribir nada. Se construye con el repositorio de productos vigente (el
// atado a la transacción, cuando la hay) para resolver el producto y leer su
// stock actual.
type Validador struct {
	productos repository.ProductoRepository
}

// NewValidador construye el validador.
func NewValidador(productos repository.ProductoRepository) *Validador {
	return &Validador{productos: productos}
}

// ValidarEntrada valida el registro de una entrada y resuelve el producto.
// Las entradas no tienen tope: sumar stock siempre es válido.
func (v *Validador) ValidarEntrada(in EntradaInput) (*entity.Producto, error) {
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.Validacionf("la cantidad debe ser mayor a 0")
	}
	if utf8.RuneCountInString(in.Proveedor) < LongitudMinimaNombre {
		return nil, domain.Validacionf("el nombre del proveedor debe tener al menos %d caracteres", LongitudMinimaNombre)
	}
	if !in.PrecioCompra.GreaterThan(decimal.Zero) {
		return nil, domain.Validacionf("el precio de compra debe ser mayor a 0")
	}
	return v.resolverProducto(in.ProductoID)
}

// ValidarSalida valida el registro de una salida y resuelve el producto.
// La regla central del sistema: una salida nunca puede dejar el stock en
// negativo; el error resultante lleva disponible y solicitado.
func (v *Validador) ValidarSalida(in SalidaInput) (*entity.Producto, error) {
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return nil, domain.Validacionf("la cantidad debe ser mayor a 0")
	}
	if !entity.MotivoValido(in.Motivo) {
		return nil, domain.Validacionf("motivo de salida no válido: %q", in.Motivo)
	}
	if utf8.RuneCountInString(in.Cliente) < LongitudMinimaNombre {
		return nil, domain.Validacionf("el nombre del cliente o destino debe tener al menos %d caracteres", LongitudMinimaNombre)
	}
	producto, err := v.resolverProducto(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto.Stock.LessThan(in.Cantidad) {
		return nil, &domain.StockInsuficienteError{
			Disponible: producto.Stock,
			Solicitada: in.Cantidad,
			Unidad:     producto.Unidad,
		}
	}
	return producto, nil
}

// ValidarReversionEntrada verifica que eliminar una entrada no deje el stock
// en negativo (el producto pudo haber salido después de entrar). La reversión
// de una salida no necesita guarda: devolver stock nunca lo vuelve negativo.
func (v *Validador) ValidarReversionEntrada(entrada *entity.Entrada, producto *entity.Producto) error {
	if producto.Stock.LessThan(entrada.Cantidad) {
		return &domain.StockInsuficienteError{
			Disponible: producto.Stock,
			Solicitada: entrada.Cantidad,
			Unidad:     producto.Unidad,
		}
	}
	return nil
}

func (v *Validador) resolverProducto(id string) (*entity.Producto, error) {
	producto, err := v.productos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return producto, nil
}
