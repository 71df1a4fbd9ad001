package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, categoria, precio, stock, unidad, fecha_caducidad, proveedor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Categoria, producto.Precio,
		producto.Stock, producto.Unidad, producto.FechaCaducidad.Time(), producto.Proveedor,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: producto %s ya existe", domain.ErrRepository, producto.ID)
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, categoria, precio, stock, unidad, fecha_caducidad, proveedor
		FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// Listar devuelve todos los productos en orden de creación.
func (r *ProductoRepo) Listar() ([]*entity.Producto, error) {
	query := `
		SELECT id, nombre, categoria, precio, stock, unidad, fecha_caducidad, proveedor
		FROM productos ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var lista []*entity.Producto
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		lista = append(lista, p)
	}
	return lista, rows.Err()
}

// Update actualiza los campos editables. El stock se maneja vía ActualizarStock.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, categoria = $3, precio = $4, unidad = $5, fecha_caducidad = $6, proveedor = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Categoria, producto.Precio,
		producto.Unidad, producto.FechaCaducidad.Time(), producto.Proveedor,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// ActualizarStock escribe únicamente el stock del producto (usado por el
// registro de movimientos).
func (r *ProductoRepo) ActualizarStock(productoID string, stock decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2 WHERE id = $1`,
		productoID, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var caducidad time.Time
	if err := row.Scan(&p.ID, &p.Nombre, &p.Categoria, &p.Precio, &p.Stock, &p.Unidad, &caducidad, &p.Proveedor); err != nil {
		return nil, err
	}
	p.FechaCaducidad = fechas.Desde(caducidad)
	return &p, nil
}
