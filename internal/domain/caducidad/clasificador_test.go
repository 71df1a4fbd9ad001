package caducidad_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/fruteria-api/internal/domain/caducidad"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

var hoy = fechas.Nueva(2026, time.September, 1)

func TestClasificar_Fronteras(t *testing.T) {
	casos := []struct {
		nombre string
		dias   int
		estado caducidad.Estado
	}{
		{"caducó ayer", -1, caducidad.EstadoCaducado},
		{"caducó hace un mes", -30, caducidad.EstadoCaducado},
		{"caduca hoy", 0, caducidad.EstadoPorCaducar},
		{"caduca en 5 días", 5, caducidad.EstadoPorCaducar},
		{"caduca en exactamente 7 días", 7, caducidad.EstadoPorCaducar},
		{"caduca en 8 días", 8, caducidad.EstadoVigente},
		{"caduca en un año", 365, caducidad.EstadoVigente},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			estado, dias := caducidad.Clasificar(hoy.Sumar(c.dias), hoy)
			assert.Equal(t, c.estado, estado)
			assert.Equal(t, c.dias, dias, "los días restantes acompañan al estado")
		})
	}
}

func TestClasificar_IgnoraLaHora(t *testing.T) {
	// La clasificación trabaja en días calendario: un producto que caduca hoy
	// es porCaducar sin importar la hora del día.
	caduca := fechas.Desde(time.Date(2026, time.September, 1, 23, 59, 0, 0, time.UTC))
	estado, dias := caducidad.Clasificar(caduca, hoy)
	assert.Equal(t, caducidad.EstadoPorCaducar, estado)
	assert.Equal(t, 0, dias)
}

func TestFraccionVigencia(t *testing.T) {
	assert.Equal(t, 0.0, caducidad.FraccionVigencia(-3), "caducado: barra vacía")
	assert.Equal(t, 0.0, caducidad.FraccionVigencia(0))
	assert.Equal(t, 0.5, caducidad.FraccionVigencia(15))
	assert.Equal(t, 1.0, caducidad.FraccionVigencia(30))
	assert.Equal(t, 1.0, caducidad.FraccionVigencia(90), "más de 30 días: barra llena")
}
