package repository

import "github.com/jhoicas/fruteria-api/internal/domain/entity"

// EntradaRepository define el puerto de persistencia para entradas de stock.
// Las entradas son inmutables: no hay Update. GetByID devuelve (nil, nil)
// cuando la entrada no existe. Listar conserva el orden de inserción.
type EntradaRepository interface {
	Create(entrada *entity.Entrada) error
	GetByID(id string) (*entity.Entrada, error)
	Listar() ([]*entity.Entrada, error)
	Delete(id string) error
}
