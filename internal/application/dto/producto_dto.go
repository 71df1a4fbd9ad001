package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// Los nombres de campo JSON son los del contrato original del dashboard
// (camelCase en español); las fechas viajan como YYYY-MM-DD.

// CrearProductoRequest entrada para crear un producto.
type CrearProductoRequest struct {
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Precio         decimal.Decimal `json:"precio"`
	Stock          decimal.Decimal `json:"stock"`
	Unidad         string          `json:"unidad"`
	FechaCaducidad fechas.Fecha    `json:"fechaCaducidad"`
	Proveedor      string          `json:"proveedor"`
}

// ActualizarProductoRequest entrada para actualizar un producto. El stock no
// se actualiza por aquí: se maneja vía entradas y salidas.
type ActualizarProductoRequest struct {
	Nombre         *string          `json:"nombre"`
	Categoria      *string          `json:"categoria"`
	Precio         *decimal.Decimal `json:"precio"`
	Unidad         *string          `json:"unidad"`
	FechaCaducidad *fechas.Fecha    `json:"fechaCaducidad"`
	Proveedor      *string          `json:"proveedor"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Precio         decimal.Decimal `json:"precio"`
	Stock          decimal.Decimal `json:"stock"`
	Unidad         string          `json:"unidad"`
	FechaCaducidad fechas.Fecha    `json:"fechaCaducidad"`
	Proveedor      string          `json:"proveedor"`
}

// AProductoResponse convierte la entidad al DTO de salida.
func AProductoResponse(p *entity.Producto) *ProductoResponse {
	if p == nil {
		return nil
	}
	return &ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Categoria:      p.Categoria,
		Precio:         p.Precio,
		Stock:          p.Stock,
		Unidad:         p.Unidad,
		FechaCaducidad: p.FechaCaducidad,
		Proveedor:      p.Proveedor,
	}
}
