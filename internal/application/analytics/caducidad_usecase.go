package analytics

import (
	"fmt"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/domain/caducidad"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// CaducidadUseCase clasifica todos los productos por proximidad de caducidad
// para la vista de control de caducidad.
type CaducidadUseCase struct {
	productos repository.ProductoRepository
}

// NewCaducidadUseCase construye el caso de uso.
func NewCaducidadUseCase(productos repository.ProductoRepository) *CaducidadUseCase {
	return &CaducidadUseCase{productos: productos}
}

// Clasificar agrupa los productos en vigentes, por caducar y caducados según
// la fecha de referencia. Dentro de cada grupo se conserva el orden del
// repositorio.
func (uc *CaducidadUseCase) Clasificar(hoy fechas.Fecha) (*dto.CaducidadResponse, error) {
	lista, err := uc.productos.Listar()
	if err != nil {
		return nil, fmt.Errorf("caducidad: productos: %w", err)
	}

	out := &dto.CaducidadResponse{
		Vigentes:   []dto.CaducidadItemDTO{},
		PorCaducar: []dto.CaducidadItemDTO{},
		Caducados:  []dto.CaducidadItemDTO{},
	}
	for _, p := range lista {
		estado, dias := caducidad.Clasificar(p.FechaCaducidad, hoy)
		item := dto.CaducidadItemDTO{
			Producto:         *dto.AProductoResponse(p),
			Estado:           estado,
			DiasRestantes:    dias,
			FraccionVigencia: caducidad.FraccionVigencia(dias),
		}
		switch estado {
		case caducidad.EstadoVigente:
			out.Vigentes = append(out.Vigentes, item)
		case caducidad.EstadoPorCaducar:
			out.PorCaducar = append(out.PorCaducar, item)
		case caducidad.EstadoCaducado:
			out.Caducados = append(out.Caducados, item)
		}
	}
	return out, nil
}
