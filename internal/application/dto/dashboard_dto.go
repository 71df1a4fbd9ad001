package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain/caducidad"
)

// ResumenDashboardDTO respuesta de GET /api/dashboard/resumen.
type ResumenDashboardDTO struct {
	StockTotal          decimal.Decimal   `json:"stockTotal"`          // suma del stock de todos los productos
	ProductosPorCaducar int               `json:"productosPorCaducar"` // productos con estado porCaducar
	EntradasRecientes   []EntradaResponse `json:"entradasRecientes"`   // últimas 5, más reciente primero
	SalidasRecientes    []SalidaResponse  `json:"salidasRecientes"`    // últimas 5, más reciente primero
}

// CaducidadItemDTO un producto con su clasificación de caducidad.
type CaducidadItemDTO struct {
	Producto         ProductoResponse `json:"producto"`
	Estado           caducidad.Estado `json:"estado"`
	DiasRestantes    int              `json:"diasRestantes"`
	FraccionVigencia float64          `json:"fraccionVigencia"` // barra visual: min(dias/30, 1), 0 si caducado
}

// CaducidadResponse respuesta de GET /api/caducidad, agrupada por estado.
type CaducidadResponse struct {
	Vigentes   []CaducidadItemDTO `json:"vigentes"`
	PorCaducar []CaducidadItemDTO `json:"porCaducar"`
	Caducados  []CaducidadItemDTO `json:"caducados"`
}
