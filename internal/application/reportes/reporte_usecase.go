// Package reportes genera el reporte de inventario en PDF.
package reportes

import (
	"context"
	"fmt"

	"github.com/jhoicas/fruteria-api/internal/application/analytics"
	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// InventarioPDFGenerator define el puerto de salida para la generación del
// PDF. La implementación concreta usa Maroto; para tests se inyecta un mock.
type InventarioPDFGenerator interface {
	GenerarInventarioPDF(ctx context.Context, hoy fechas.Fecha, caducidad *dto.CaducidadResponse) ([]byte, error)
}

// ReporteUseCase orquesta el reporte de inventario: clasifica los productos
// por caducidad y delega el documento al generador.
type ReporteUseCase struct {
	caducidadUC *analytics.CaducidadUseCase
	generator   InventarioPDFGenerator
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(caducidadUC *analytics.CaducidadUseCase, generator InventarioPDFGenerator) *ReporteUseCase {
	return &ReporteUseCase{caducidadUC: caducidadUC, generator: generator}
}

// GenerarInventario devuelve los bytes del PDF del inventario a la fecha.
func (uc *ReporteUseCase) GenerarInventario(ctx context.Context, hoy fechas.Fecha) ([]byte, error) {
	clasificacion, err := uc.caducidadUC.Clasificar(hoy)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.GenerarInventarioPDF(ctx, hoy, clasificacion)
	if err != nil {
		return nil, fmt.Errorf("reporte de inventario: %w", err)
	}
	return pdf, nil
}
