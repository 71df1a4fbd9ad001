package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

var _ repository.EntradaRepository = (*EntradaRepo)(nil)

// EntradaRepo implementación del puerto EntradaRepository sobre PostgreSQL.
type EntradaRepo struct {
	q Querier
}

// NewEntradaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntradaRepository(q Querier) *EntradaRepo {
	return &EntradaRepo{q: q}
}

// Create persiste una entrada de inventario.
func (r *EntradaRepo) Create(entrada *entity.Entrada) error {
	query := `
		INSERT INTO entradas (id, producto_id, nombre_producto, cantidad, fecha, proveedor, precio_compra, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.q.Exec(context.Background(), query,
		entrada.ID, entrada.ProductoID, entrada.NombreProducto, entrada.Cantidad,
		entrada.Fecha.Time(), entrada.Proveedor, entrada.PrecioCompra,
	)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (r *EntradaRepo) GetByID(id string) (*entity.Entrada, error) {
	query := `
		SELECT id, producto_id, nombre_producto, cantidad, fecha, proveedor, precio_compra
		FROM entradas WHERE id = $1`
	e, err := scanEntrada(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entrada: %w", err)
	}
	return e, nil
}

// Listar devuelve todas las entradas en orden de inserción.
func (r *EntradaRepo) Listar() ([]*entity.Entrada, error) {
	query := `
		SELECT id, producto_id, nombre_producto, cantidad, fecha, proveedor, precio_compra
		FROM entradas ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	var lista []*entity.Entrada
	for rows.Next() {
		e, err := scanEntrada(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		lista = append(lista, e)
	}
	return lista, rows.Err()
}

// Delete elimina una entrada por ID.
func (r *EntradaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entradas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entrada: %w", err)
	}
	return nil
}

func scanEntrada(row pgx.Row) (*entity.Entrada, error) {
	var e entity.Entrada
	var fecha time.Time
	if err := row.Scan(&e.ID, &e.ProductoID, &e.NombreProducto, &e.Cantidad, &fecha, &e.Proveedor, &e.PrecioCompra); err != nil {
		return nil, err
	}
	e.Fecha = fechas.Desde(fecha)
	return &e, nil
}
