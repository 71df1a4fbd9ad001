package movimientos_test

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests del libro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

type memProductos struct {
	items map[string]*entity.Producto
	orden []string
	// fallaActualizarStock simula que la segunda escritura del movimiento
	// falla (colaborador caído a mitad de la operación).
	fallaActualizarStock bool
}

func newMemProductos(productos ...*entity.Producto) *memProductos {
	m := &memProductos{items: map[string]*entity.Producto{}}
	for _, p := range productos {
		m.items[p.ID] = p
		m.orden = append(m.orden, p.ID)
	}
	return m
}

func (m *memProductos) Create(p *entity.Producto) error {
	m.items[p.ID] = p
	m.orden = append(m.orden, p.ID)
	return nil
}

func (m *memProductos) GetByID(id string) (*entity.Producto, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (m *memProductos) Listar() ([]*entity.Producto, error) {
	lista := make([]*entity.Producto, 0, len(m.orden))
	for _, id := range m.orden {
		copia := *m.items[id]
		lista = append(lista, &copia)
	}
	return lista, nil
}

func (m *memProductos) Update(p *entity.Producto) error {
	m.items[p.ID] = p
	return nil
}

func (m *memProductos) ActualizarStock(productoID string, stock decimal.Decimal) error {
	if m.fallaActualizarStock {
		return errors.New("colaborador no disponible")
	}
	p, ok := m.items[productoID]
	if !ok {
		return errors.New("producto no existe")
	}
	p.Stock = stock
	return nil
}

func (m *memProductos) Delete(id string) error {
	delete(m.items, id)
	for i, x := range m.orden {
		if x == id {
			m.orden = append(m.orden[:i], m.orden[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memProductos) stockDe(id string) decimal.Decimal {
	return m.items[id].Stock
}

type memEntradas struct {
	items []*entity.Entrada
}

func (m *memEntradas) Create(e *entity.Entrada) error {
	m.items = append(m.items, e)
	return nil
}

func (m *memEntradas) GetByID(id string) (*entity.Entrada, error) {
	for _, e := range m.items {
		if e.ID == id {
			copia := *e
			return &copia, nil
		}
	}
	return nil, nil
}

func (m *memEntradas) Listar() ([]*entity.Entrada, error) {
	return append([]*entity.Entrada{}, m.items...), nil
}

func (m *memEntradas) Delete(id string) error {
	for i, e := range m.items {
		if e.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memSalidas struct {
	items []*entity.Salida
}

func (m *memSalidas) Create(s *entity.Salida) error {
	m.items = append(m.items, s)
	return nil
}

func (m *memSalidas) GetByID(id string) (*entity.Salida, error) {
	for _, s := range m.items {
		if s.ID == id {
			copia := *s
			return &copia, nil
		}
	}
	return nil, nil
}

func (m *memSalidas) Listar() ([]*entity.Salida, error) {
	return append([]*entity.Salida{}, m.items...), nil
}

func (m *memSalidas) Delete(id string) error {
	for i, s := range m.items {
		if s.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}
