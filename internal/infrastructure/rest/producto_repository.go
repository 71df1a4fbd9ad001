package rest

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// productoWire es el documento del colaborador para /productos.
type productoWire struct {
	ID             wireID          `json:"id"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Precio         decimal.Decimal `json:"precio"`
	Stock          decimal.Decimal `json:"stock"`
	Unidad         string          `json:"unidad"`
	FechaCaducidad fechas.Fecha    `json:"fechaCaducidad"`
	Proveedor      string          `json:"proveedor"`
}

func (w *productoWire) aEntidad() *entity.Producto {
	return &entity.Producto{
		ID:             string(w.ID),
		Nombre:         w.Nombre,
		Categoria:      w.Categoria,
		Precio:         w.Precio,
		Stock:          w.Stock,
		Unidad:         w.Unidad,
		FechaCaducidad: w.FechaCaducidad,
		Proveedor:      w.Proveedor,
	}
}

func aProductoWire(p *entity.Producto) *productoWire {
	return &productoWire{
		ID:             wireID(p.ID),
		Nombre:         p.Nombre,
		Categoria:      p.Categoria,
		Precio:         p.Precio,
		Stock:          p.Stock,
		Unidad:         p.Unidad,
		FechaCaducidad: p.FechaCaducidad,
		Proveedor:      p.Proveedor,
	}
}

// ProductoRepository implementa repository.ProductoRepository sobre el
// colaborador REST.
type ProductoRepository struct {
	cliente *Cliente
}

// NewProductoRepository construye el repositorio.
func NewProductoRepository(cliente *Cliente) *ProductoRepository {
	return &ProductoRepository{cliente: cliente}
}

var _ repository.ProductoRepository = (*ProductoRepository)(nil)

// Create persiste el producto con POST /productos.
func (r *ProductoRepository) Create(producto *entity.Producto) error {
	if err := r.cliente.post("/productos", aProductoWire(producto), nil); err != nil {
		return fmt.Errorf("crear producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto. Devuelve (nil, nil) si no existe.
func (r *ProductoRepository) GetByID(id string) (*entity.Producto, error) {
	var doc productoWire
	err := r.cliente.get("/productos/"+id, &doc)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener producto %s: %w", id, err)
	}
	return doc.aEntidad(), nil
}

// Listar devuelve todos los productos en el orden de la colección.
func (r *ProductoRepository) Listar() ([]*entity.Producto, error) {
	var docs []productoWire
	if err := r.cliente.get("/productos", &docs); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	lista := make([]*entity.Producto, 0, len(docs))
	for i := range docs {
		lista = append(lista, docs[i].aEntidad())
	}
	return lista, nil
}

// Update reemplaza todos los campos del producto con PATCH /productos/{id}.
func (r *ProductoRepository) Update(producto *entity.Producto) error {
	if err := r.cliente.patch("/productos/"+producto.ID, aProductoWire(producto), nil); err != nil {
		return fmt.Errorf("actualizar producto %s: %w", producto.ID, err)
	}
	return nil
}

// ActualizarStock escribe únicamente el campo stock. Es la segunda escritura
// de cada movimiento registrado.
func (r *ProductoRepository) ActualizarStock(productoID string, stock decimal.Decimal) error {
	body := map[string]decimal.Decimal{"stock": stock}
	if err := r.cliente.patch("/productos/"+productoID, body, nil); err != nil {
		return fmt.Errorf("actualizar stock de %s: %w", productoID, err)
	}
	return nil
}

// Delete elimina el producto.
func (r *ProductoRepository) Delete(id string) error {
	if err := r.cliente.delete("/productos/" + id); err != nil {
		return fmt.Errorf("eliminar producto %s: %w", id, err)
	}
	return nil
}
