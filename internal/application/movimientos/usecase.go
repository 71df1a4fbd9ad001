// Package movimientos implementa el libro de movimientos de inventario:
// registrar y eliminar entradas y salidas manteniendo el stock de cada
// producto sincronizado con su historial.
package movimientos

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

// UseCase registra y elimina movimientos de inventario. Cada operación son
// dos escrituras dependientes, siempre en este orden: primero el registro del
// movimiento, después el stock del producto. El stock nuevo se deriva del
// stock conocido más/menos el delta del movimiento; no se recalcula desde el
// historial completo. Con el runner secuencial no hay rollback: si la segunda
// escritura falla, el movimiento queda persistido y el producto no, hasta la
// siguiente recarga.
type UseCase struct {
	tx TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// RegistrarEntrada valida y persiste una entrada, y suma su cantidad al stock
// del producto. El nombre del producto se copia en la entrada como registro
// histórico.
func (uc *UseCase) RegistrarEntrada(ctx context.Context, in EntradaInput) (*entity.Entrada, error) {
	var creada *entity.Entrada
	err := uc.tx.Run(ctx, func(
		productos repository.ProductoRepository,
		entradas repository.EntradaRepository,
		_ repository.SalidaRepository,
	) error {
		producto, err := NewValidador(productos).ValidarEntrada(in)
		if err != nil {
			return err
		}
		entrada := &entity.Entrada{
			ID:             uuid.New().String(),
			ProductoID:     producto.ID,
			NombreProducto: producto.Nombre,
			Cantidad:       in.Cantidad,
			Fecha:          in.Fecha,
			Proveedor:      in.Proveedor,
			PrecioCompra:   in.PrecioCompra,
		}
		if err := entradas.Create(entrada); err != nil {
			return err
		}
		if err := productos.ActualizarStock(producto.ID, producto.Stock.Add(in.Cantidad)); err != nil {
			return err
		}
		creada = entrada
		return nil
	})
	if err != nil {
		return nil, err
	}
	return creada, nil
}

// RegistrarSalida valida y persiste una salida, y resta su cantidad del stock
// del producto. La validación garantiza que el stock no queda negativo.
func (uc *UseCase) RegistrarSalida(ctx context.Context, in SalidaInput) (*entity.Salida, error) {
	var creada *entity.Salida
	err := uc.tx.Run(ctx, func(
		productos repository.ProductoRepository,
		_ repository.EntradaRepository,
		salidas repository.SalidaRepository,
	) error {
		producto, err := NewValidador(productos).ValidarSalida(in)
		if err != nil {
			return err
		}
		salida := &entity.Salida{
			ID:             uuid.New().String(),
			ProductoID:     producto.ID,
			NombreProducto: producto.Nombre,
			Cantidad:       in.Cantidad,
			Fecha:          in.Fecha,
			Motivo:         in.Motivo,
			Cliente:        in.Cliente,
		}
		if err := salidas.Create(salida); err != nil {
			return err
		}
		if err := productos.ActualizarStock(producto.ID, producto.Stock.Sub(in.Cantidad)); err != nil {
			return err
		}
		creada = salida
		return nil
	})
	if err != nil {
		return nil, err
	}
	return creada, nil
}

// EliminarEntrada revierte una entrada: borra el registro y resta su cantidad
// del stock. Se rechaza si el stock actual es menor que la cantidad (la
// reversión dejaría el stock en negativo). El borrado del movimiento ocurre
// antes del ajuste de stock, igual que en el registro.
func (uc *UseCase) EliminarEntrada(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		productos repository.ProductoRepository,
		entradas repository.EntradaRepository,
		_ repository.SalidaRepository,
	) error {
		entrada, err := entradas.GetByID(id)
		if err != nil {
			return err
		}
		if entrada == nil {
			return domain.ErrNotFound
		}
		producto, err := productos.GetByID(entrada.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if err := NewValidador(productos).ValidarReversionEntrada(entrada, producto); err != nil {
			return err
		}
		if err := entradas.Delete(id); err != nil {
			return err
		}
		return productos.ActualizarStock(producto.ID, producto.Stock.Sub(entrada.Cantidad))
	})
}

// EliminarSalida revierte una salida: borra el registro y devuelve su
// cantidad al stock. No necesita guarda de stock.
func (uc *UseCase) EliminarSalida(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(
		productos repository.ProductoRepository,
		_ repository.EntradaRepository,
		salidas repository.SalidaRepository,
	) error {
		salida, err := salidas.GetByID(id)
		if err != nil {
			return err
		}
		if salida == nil {
			return domain.ErrNotFound
		}
		producto, err := productos.GetByID(salida.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if err := salidas.Delete(id); err != nil {
			return err
		}
		return productos.ActualizarStock(producto.ID, producto.Stock.Add(salida.Cantidad))
	})
}
