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

var _ repository.SalidaRepository = (*SalidaRepo)(nil)

// SalidaRepo implementación del puerto SalidaRepository sobre PostgreSQL.
type SalidaRepo struct {
	q Querier
}

// NewSalidaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalidaRepository(q Querier) *SalidaRepo {
	return &SalidaRepo{q: q}
}

// Create persiste una salida de inventario.
func (r *SalidaRepo) Create(salida *entity.Salida) error {
	query := `
		INSERT INTO salidas (id, producto_id, nombre_producto, cantidad, fecha, motivo, cliente, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.q.Exec(context.Background(), query,
		salida.ID, salida.ProductoID, salida.NombreProducto, salida.Cantidad,
		salida.Fecha.Time(), salida.Motivo, salida.Cliente,
	)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	return nil
}

// GetByID obtiene una salida por ID. Devuelve (nil, nil) si no existe.
func (r *SalidaRepo) GetByID(id string) (*entity.Salida, error) {
	query := `
		SELECT id, producto_id, nombre_producto, cantidad, fecha, motivo, cliente
		FROM salidas WHERE id = $1`
	s, err := scanSalida(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salida: %w", err)
	}
	return s, nil
}

// Listar devuelve todas las salidas en orden de inserción.
func (r *SalidaRepo) Listar() ([]*entity.Salida, error) {
	query := `
		SELECT id, producto_id, nombre_producto, cantidad, fecha, motivo, cliente
		FROM salidas ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	var lista []*entity.Salida
	for rows.Next() {
		s, err := scanSalida(rows)
		if err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		lista = append(lista, s)
	}
	return lista, rows.Err()
}

// Delete elimina una salida por ID.
func (r *SalidaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM salidas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete salida: %w", err)
	}
	return nil
}

func scanSalida(row pgx.Row) (*entity.Salida, error) {
	var s entity.Salida
	var fecha time.Time
	if err := row.Scan(&s.ID, &s.ProductoID, &s.NombreProducto, &s.Cantidad, &fecha, &s.Motivo, &s.Cliente); err != nil {
		return nil, err
	}
	s.Fecha = fechas.Desde(fecha)
	return &s, nil
}
