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

// entradaWire es el documento del colaborador para /entradas.
type entradaWire struct {
	ID             wireID          `json:"id"`
	ProductoID     wireID          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Fecha          fechas.Fecha    `json:"fecha"`
	Proveedor      string          `json:"proveedor"`
	PrecioCompra   decimal.Decimal `json:"precioCompra"`
}

// salidaWire es el documento del colaborador para /salidas.
type salidaWire struct {
	ID             wireID          `json:"id"`
	ProductoID     wireID          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Fecha          fechas.Fecha    `json:"fecha"`
	Motivo         string          `json:"motivo"`
	Cliente        string          `json:"cliente,omitempty"`
}

// EntradaRepository implementa repository.EntradaRepository sobre el
// colaborador REST.
type EntradaRepository struct {
	cliente *Cliente
}

// NewEntradaRepository construye el repositorio.
func NewEntradaRepository(cliente *Cliente) *EntradaRepository {
	return &EntradaRepository{cliente: cliente}
}

var _ repository.EntradaRepository = (*EntradaRepository)(nil)

// Create persiste la entrada con POST /entradas.
func (r *EntradaRepository) Create(entrada *entity.Entrada) error {
	doc := entradaWire{
		ID:             wireID(entrada.ID),
		ProductoID:     wireID(entrada.ProductoID),
		NombreProducto: entrada.NombreProducto,
		Cantidad:       entrada.Cantidad,
		Fecha:          entrada.Fecha,
		Proveedor:      entrada.Proveedor,
		PrecioCompra:   entrada.PrecioCompra,
	}
	if err := r.cliente.post("/entradas", doc, nil); err != nil {
		return fmt.Errorf("crear entrada: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada. Devuelve (nil, nil) si no existe.
func (r *EntradaRepository) GetByID(id string) (*entity.Entrada, error) {
	var doc entradaWire
	err := r.cliente.get("/entradas/"+id, &doc)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener entrada %s: %w", id, err)
	}
	return doc.aEntidad(), nil
}

// Listar devuelve todas las entradas en orden de inserción.
func (r *EntradaRepository) Listar() ([]*entity.Entrada, error) {
	var docs []entradaWire
	if err := r.cliente.get("/entradas", &docs); err != nil {
		return nil, fmt.Errorf("listar entradas: %w", err)
	}
	lista := make([]*entity.Entrada, 0, len(docs))
	for i := range docs {
		lista = append(lista, docs[i].aEntidad())
	}
	return lista, nil
}

// Delete elimina la entrada.
func (r *EntradaRepository) Delete(id string) error {
	if err := r.cliente.delete("/entradas/" + id); err != nil {
		return fmt.Errorf("eliminar entrada %s: %w", id, err)
	}
	return nil
}

func (w *entradaWire) aEntidad() *entity.Entrada {
	return &entity.Entrada{
		ID:             string(w.ID),
		ProductoID:     string(w.ProductoID),
		NombreProducto: w.NombreProducto,
		Cantidad:       w.Cantidad,
		Fecha:          w.Fecha,
		Proveedor:      w.Proveedor,
		PrecioCompra:   w.PrecioCompra,
	}
}

// SalidaRepository implementa repository.SalidaRepository sobre el
// colaborador REST.
type SalidaRepository struct {
	cliente *Cliente
}

// NewSalidaRepository construye el repositorio.
func NewSalidaRepository(cliente *Cliente) *SalidaRepository {
	return &SalidaRepository{cliente: cliente}
}

var _ repository.SalidaRepository = (*SalidaRepository)(nil)

// Create persiste la salida con POST /salidas.
func (r *SalidaRepository) Create(salida *entity.Salida) error {
	doc := salidaWire{
		ID:             wireID(salida.ID),
		ProductoID:     wireID(salida.ProductoID),
		NombreProducto: salida.NombreProducto,
		Cantidad:       salida.Cantidad,
		Fecha:          salida.Fecha,
		Motivo:         salida.Motivo,
		Cliente:        salida.Cliente,
	}
	if err := r.cliente.post("/salidas", doc, nil); err != nil {
		return fmt.Errorf("crear salida: %w", err)
	}
	return nil
}

// GetByID obtiene una salida. Devuelve (nil, nil) si no existe.
func (r *SalidaRepository) GetByID(id string) (*entity.Salida, error) {
	var doc salidaWire
	err := r.cliente.get("/salidas/"+id, &doc)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("obtener salida %s: %w", id, err)
	}
	return doc.aEntidad(), nil
}

// Listar devuelve todas las salidas en orden de inserción.
func (r *SalidaRepository) Listar() ([]*entity.Salida, error) {
	var docs []salidaWire
	if err := r.cliente.get("/salidas", &docs); err != nil {
		return nil, fmt.Errorf("listar salidas: %w", err)
	}
	lista := make([]*entity.Salida, 0, len(docs))
	for i := range docs {
		lista = append(lista, docs[i].aEntidad())
	}
	return lista, nil
}

// Delete elimina la salida.
func (r *SalidaRepository) Delete(id string) error {
	if err := r.cliente.delete("/salidas/" + id); err != nil {
		return fmt.Errorf("eliminar salida %s: %w", id, err)
	}
	return nil
}

func (w *salidaWire) aEntidad() *entity.Salida {
	return &entity.Salida{
		ID:             string(w.ID),
		ProductoID:     string(w.ProductoID),
		NombreProducto: w.NombreProducto,
		Cantidad:       w.Cantidad,
		Fecha:          w.Fecha,
		Motivo:         w.Motivo,
		Cliente:        w.Cliente,
	}
}
