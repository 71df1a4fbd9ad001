package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

// RegistrarEntradaRequest entrada para registrar un ingreso de stock.
// nombreProducto no se recibe: se copia del producto al registrar.
type RegistrarEntradaRequest struct {
	ProductoID   string          `json:"productoId"`
	Cantidad     decimal.Decimal `json:"cantidad"`
	Fecha        fechas.Fecha    `json:"fecha"`
	Proveedor    string          `json:"proveedor"`
	PrecioCompra decimal.Decimal `json:"precioCompra"`
}

// RegistrarSalidaRequest entrada para registrar un egreso de stock.
type RegistrarSalidaRequest struct {
	ProductoID string          `json:"productoId"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Fecha      fechas.Fecha    `json:"fecha"`
	Motivo     string          `json:"motivo"`
	Cliente    string          `json:"cliente"`
}

// EntradaResponse salida de una entrada registrada.
type EntradaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Fecha          fechas.Fecha    `json:"fecha"`
	Proveedor      string          `json:"proveedor"`
	PrecioCompra   decimal.Decimal `json:"precioCompra"`
}

// SalidaResponse salida de una salida registrada.
type SalidaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"productoId"`
	NombreProducto string          `json:"nombreProducto"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Fecha          fechas.Fecha    `json:"fecha"`
	Motivo         string          `json:"motivo"`
	Cliente        string          `json:"cliente"`
}

// AEntradaResponse convierte la entidad al DTO de salida.
func AEntradaResponse(e *entity.Entrada) *EntradaResponse {
	if e == nil {
		return nil
	}
	return &EntradaResponse{
		ID:             e.ID,
		ProductoID:     e.ProductoID,
		NombreProducto: e.NombreProducto,
		Cantidad:       e.Cantidad,
		Fecha:          e.Fecha,
		Proveedor:      e.Proveedor,
		PrecioCompra:   e.PrecioCompra,
	}
}

// ASalidaResponse convierte la entidad al DTO de salida.
func ASalidaResponse(s *entity.Salida) *SalidaResponse {
	if s == nil {
		return nil
	}
	return &SalidaResponse{
		ID:             s.ID,
		ProductoID:     s.ProductoID,
		NombreProducto: s.NombreProducto,
		Cantidad:       s.Cantidad,
		Fecha:          s.Fecha,
		Motivo:         s.Motivo,
		Cliente:        s.Cliente,
	}
}
