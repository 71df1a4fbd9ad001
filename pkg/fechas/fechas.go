// Package fechas define el tipo Fecha: un día calendario sin componente de
// hora. El formato de transporte es "2006-01-02" (YYYY-MM-DD) y el de
// presentación "02/01/2006" (DD/MM/YYYY).
package fechas

import (
	"fmt"
	"strings"
	"time"
)

// FormatoWire es el layout con el que viajan las fechas en JSON.
const FormatoWire = "2006-01-02"

// FormatoPresentacion es el layout para mostrar fechas al usuario.
const FormatoPresentacion = "02/01/2006"

// Fecha representa un día calendario (medianoche UTC, sin hora).
type Fecha struct {
	t time.Time
}

// Nueva construye una Fecha a partir de año, mes y día.
func Nueva(anio int, mes time.Month, dia int) Fecha {
	return Fecha{t: time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// Desde normaliza un time.Time a su día calendario (descarta la hora).
func Desde(t time.Time) Fecha {
	return Nueva(t.Year(), t.Month(), t.Day())
}

// Hoy devuelve el día calendario actual según el reloj del sistema.
// Los casos de uso reciben la fecha como parámetro; Hoy solo se llama
// en el borde HTTP para mantener la lógica de dominio pura.
func Hoy() Fecha {
	return Desde(time.Now())
}

// Parse interpreta una fecha en formato YYYY-MM-DD.
func Parse(s string) (Fecha, error) {
	t, err := time.Parse(FormatoWire, strings.TrimSpace(s))
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	return Desde(t), nil
}

// EsCero indica si la fecha no fue asignada.
func (f Fecha) EsCero() bool { return f.t.IsZero() }

// Time devuelve la medianoche UTC del día.
func (f Fecha) Time() time.Time { return f.t }

// String devuelve la fecha en formato wire (YYYY-MM-DD).
func (f Fecha) String() string { return f.t.Format(FormatoWire) }

// Formatear devuelve la fecha en formato de presentación (DD/MM/YYYY).
func (f Fecha) Formatear() string { return f.t.Format(FormatoPresentacion) }

// Sumar devuelve la fecha desplazada la cantidad de días indicada.
func (f Fecha) Sumar(dias int) Fecha { return Desde(f.t.AddDate(0, 0, dias)) }

// DiasHasta devuelve los días calendario completos desde f hasta otra.
// Ambas fechas ya están normalizadas a medianoche, así que la división
// es exacta; el resultado es negativo si otra es anterior a f.
func (f Fecha) DiasHasta(otra Fecha) int {
	return int(otra.t.Sub(f.t) / (24 * time.Hour))
}

// Antes indica si f es estrictamente anterior a otra.
func (f Fecha) Antes(otra Fecha) bool { return f.t.Before(otra.t) }

// Igual indica si ambas fechas son el mismo día calendario.
func (f Fecha) Igual(otra Fecha) bool { return f.t.Equal(otra.t) }

// MarshalJSON serializa la fecha como "YYYY-MM-DD".
func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON acepta "YYYY-MM-DD" (y tolera un sufijo de hora ISO, que
// algunos clientes envían; solo se conserva el día).
func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = Fecha{}
		return nil
	}
	if len(s) > len(FormatoWire) {
		s = s[:len(FormatoWire)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
