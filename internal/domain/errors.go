package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrRepository        = errors.New("error del repositorio")
)

// ValidacionError describe un dato rechazado por las reglas de negocio.
// Su mensaje es apto para mostrarse tal cual al usuario.
type ValidacionError struct {
	Mensaje string
}

func (e *ValidacionError) Error() string { return e.Mensaje }

// Is permite detectar el error con errors.Is(err, ErrInvalidInput).
func (e *ValidacionError) Is(target error) bool { return target == ErrInvalidInput }

// Validacionf construye un ValidacionError con formato.
func Validacionf(format string, args ...any) error {
	return &ValidacionError{Mensaje: fmt.Sprintf(format, args...)}
}

// StockInsuficienteError se produce cuando una salida (o la reversión de una
// entrada) dejaría el stock de un producto en negativo. Lleva el stock
// disponible y la cantidad solicitada para que el caller arme un mensaje
// accionable.
type StockInsuficienteError struct {
	Disponible decimal.Decimal
	Solicitada decimal.Decimal
	Unidad     string
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente. Stock disponible: %s %s. Cantidad solicitada: %s %s",
		e.Disponible, e.Unidad, e.Solicitada, e.Unidad)
}

// Is permite detectar el error con errors.Is(err, ErrInsufficientStock).
func (e *StockInsuficienteError) Is(target error) bool { return target == ErrInsufficientStock }
