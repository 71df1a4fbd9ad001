// Package analytics contiene los casos de uso de lectura del dashboard:
// resumen general y reporte de caducidad.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/domain/caducidad"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// movimientosRecientes cuántos movimientos muestra cada widget del dashboard.
const movimientosRecientes = 5

// DashboardUseCase arma el resumen general: stock total, productos por
// caducar y últimos movimientos. Lee las tres colecciones completas en cada
// petición; no mantiene estado.
type DashboardUseCase struct {
	productos repository.ProductoRepository
	entradas  repository.EntradaRepository
	salidas   repository.SalidaRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productos repository.ProductoRepository,
	entradas repository.EntradaRepository,
	salidas repository.SalidaRepository,
) *DashboardUseCase {
	return &DashboardUseCase{productos: productos, entradas: entradas, salidas: salidas}
}

// GetResumen construye el ResumenDashboardDTO. La fecha de referencia para la
// clasificación de caducidad se recibe como parámetro.
//
// Las tres colecciones se leen en paralelo; el resumen es consistente solo a
// nivel de cada colección (no hay snapshot entre ellas).
func (uc *DashboardUseCase) GetResumen(ctx context.Context, hoy fechas.Fecha) (*dto.ResumenDashboardDTO, error) {
	type productosResult struct {
		lista []*entity.Producto
		err   error
	}
	type entradasResult struct {
		lista []*entity.Entrada
		err   error
	}
	type salidasResult struct {
		lista []*entity.Salida
		err   error
	}

	productosCh := make(chan productosResult, 1)
	entradasCh := make(chan entradasResult, 1)
	salidasCh := make(chan salidasResult, 1)

	go func() {
		lista, err := uc.productos.Listar()
		productosCh <- productosResult{lista, err}
	}()
	go func() {
		lista, err := uc.entradas.Listar()
		entradasCh <- entradasResult{lista, err}
	}()
	go func() {
		lista, err := uc.salidas.Listar()
		salidasCh <- salidasResult{lista, err}
	}()

	productos := <-productosCh
	entradas := <-entradasCh
	salidas := <-salidasCh

	if productos.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", productos.err)
	}
	if entradas.err != nil {
		return nil, fmt.Errorf("dashboard: entradas: %w", entradas.err)
	}
	if salidas.err != nil {
		return nil, fmt.Errorf("dashboard: salidas: %w", salidas.err)
	}

	stockTotal := decimal.Zero
	porCaducar := 0
	for _, p := range productos.lista {
		stockTotal = stockTotal.Add(p.Stock)
		if estado, _ := caducidad.Clasificar(p.FechaCaducidad, hoy); estado == caducidad.EstadoPorCaducar {
			porCaducar++
		}
	}

	resumen := &dto.ResumenDashboardDTO{
		StockTotal:          stockTotal,
		ProductosPorCaducar: porCaducar,
		EntradasRecientes:   make([]dto.EntradaResponse, 0, movimientosRecientes),
		SalidasRecientes:    make([]dto.SalidaResponse, 0, movimientosRecientes),
	}
	// Últimos N en orden inverso (el más reciente primero), como los widgets
	// del dashboard original.
	for i := len(entradas.lista) - 1; i >= 0 && len(resumen.EntradasRecientes) < movimientosRecientes; i-- {
		resumen.EntradasRecientes = append(resumen.EntradasRecientes, *dto.AEntradaResponse(entradas.lista[i]))
	}
	for i := len(salidas.lista) - 1; i >= 0 && len(resumen.SalidasRecientes) < movimientosRecientes; i-- {
		resumen.SalidasRecientes = append(resumen.SalidasRecientes, *dto.ASalidaResponse(salidas.lista[i]))
	}
	return resumen, nil
}
