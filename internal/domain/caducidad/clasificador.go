// Package caducidad clasifica productos según la proximidad de su fecha de
// caducidad (servicio de dominio, funciones puras).
package caducidad

import "github.com/jhoicas/fruteria-api/pkg/fechas"

// Estado es la clasificación derivada de un producto; no se persiste.
type Estado string

const (
	EstadoVigente    Estado = "vigente"    // más de 7 días hasta caducar
	EstadoPorCaducar Estado = "porCaducar" // caduca en 0 a 7 días
	EstadoCaducado   Estado = "caducado"   // la fecha ya pasó
)

// UmbralPorCaducarDias es el límite inclusivo del estado porCaducar:
// exactamente 7 días restantes sigue siendo porCaducar; 8 ya es vigente.
const UmbralPorCaducarDias = 7

// diasBarraMaximos acota la barra de vigencia: con 30 días o más la barra
// se muestra llena.
const diasBarraMaximos = 30

// Clasificar calcula el estado de caducidad y los días restantes en
// granularidad de día calendario (la hora se ignora; hoy se recibe como
// parámetro para mantener la función pura). Días negativos significan que el
// producto ya caducó: -1 es "caducó ayer".
func Clasificar(fechaCaducidad, hoy fechas.Fecha) (Estado, int) {
	dias := hoy.DiasHasta(fechaCaducidad)
	switch {
	case dias < 0:
		return EstadoCaducado, dias
	case dias <= UmbralPorCaducarDias:
		return EstadoPorCaducar, dias
	default:
		return EstadoVigente, dias
	}
}

// FraccionVigencia devuelve min(dias/30, 1) acotado a [0, 1], la fracción de
// la barra visual de vigencia. Solo presentación; no afecta la clasificación.
func FraccionVigencia(diasRestantes int) float64 {
	if diasRestantes < 0 {
		return 0
	}
	f := float64(diasRestantes) / float64(diasBarraMaximos)
	if f > 1 {
		return 1
	}
	return f
}
