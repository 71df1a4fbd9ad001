package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fruteria-api/internal/application/movimientos"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

// Ensure TxRunner implements movimientos.TxRunner.
var _ movimientos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. A
// diferencia del driver REST, aquí movimiento y stock se confirman o
// revierten juntos.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productos repository.ProductoRepository,
	entradas repository.EntradaRepository,
	salidas repository.SalidaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productos := NewProductoRepository(tx)
	entradas := NewEntradaRepository(tx)
	salidas := NewSalidaRepository(tx)

	if err := fn(productos, entradas, salidas); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
