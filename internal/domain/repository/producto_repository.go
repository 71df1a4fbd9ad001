package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Listar() ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	// ActualizarStock escribe únicamente el campo stock (PATCH parcial en el
	// colaborador REST). Es la segunda mitad de cada operación del libro de
	// movimientos.
	ActualizarStock(productoID string, stock decimal.Decimal) error
	Delete(id string) error
}
