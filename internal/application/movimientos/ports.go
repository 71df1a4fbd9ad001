package movimientos

import (
	"context"

	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función con los tres repositorios del libro de
// movimientos. La implementación PostgreSQL ata los repos a una transacción
// (las dos escrituras de cada operación se confirman o descartan juntas); la
// implementación secuencial los pasa tal cual, y las escrituras quedan como
// dos llamadas remotas independientes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productos repository.ProductoRepository,
		entradas repository.EntradaRepository,
		salidas repository.SalidaRepository,
	) error) error
}

// SecuencialRunner implementa TxRunner sin atomicidad, para el colaborador
// REST: si la segunda escritura falla, la primera ya quedó persistida y el
// estado se reconcilia en la siguiente recarga completa.
type SecuencialRunner struct {
	productos repository.ProductoRepository
	entradas  repository.EntradaRepository
	salidas   repository.SalidaRepository
}

// NewSecuencialRunner construye el runner con los repositorios base.
func NewSecuencialRunner(
	productos repository.ProductoRepository,
	entradas repository.EntradaRepository,
	salidas repository.SalidaRepository,
) *SecuencialRunner {
	return &SecuencialRunner{productos: productos, entradas: entradas, salidas: salidas}
}

// Run invoca fn con los repositorios base, sin transacción.
func (r *SecuencialRunner) Run(_ context.Context, fn func(
	productos repository.ProductoRepository,
	entradas repository.EntradaRepository,
	salidas repository.SalidaRepository,
) error) error {
	return fn(r.productos, r.entradas, r.salidas)
}
