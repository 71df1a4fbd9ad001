package repository

import "github.com/jhoicas/fruteria-api/internal/domain/entity"

// SalidaRepository define el puerto de persistencia para salidas de stock.
// Misma forma de ciclo de vida que EntradaRepository.
type SalidaRepository interface {
	Create(salida *entity.Salida) error
	GetByID(id string) (*entity.Salida, error)
	Listar() ([]*entity.Salida, error)
	Delete(id string) error
}
