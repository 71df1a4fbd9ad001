package rest_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/infrastructure/rest"
	"github.com/jhoicas/fruteria-api/pkg/fechas"
)

func init() {
	// Mismo contrato que en main: cantidades y precios viajan como números
	// planos, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// servidorFalso emula al colaborador REST (json-server) con respuestas fijas.
func servidorFalso(t *testing.T, rutas map[string]func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for patron, h := range rutas {
		mux.HandleFunc(patron, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func respuestaJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestProductoGetByID_IDNumerico(t *testing.T) {
	// json-server asigna ids numéricos a los registros del seed; la app los
	// normaliza a string.
	srv := servidorFalso(t, map[string]func(http.ResponseWriter, *http.Request){
		"/productos/1": func(w http.ResponseWriter, r *http.Request) {
			respuestaJSON(w, http.StatusOK, `{
				"id": 1,
				"nombre": "Manzana Roja",
				"categoria": "Frutas",
				"precio": 45.5,
				"stock": 10,
				"unidad": "kg",
				"fechaCaducidad": "2026-09-06",
				"proveedor": "Huerta El Paraíso"
			}`)
		},
	})

	repo := rest.NewProductoRepository(rest.NewCliente(srv.URL, time.Second))
	p, err := repo.GetByID("1")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "Manzana Roja", p.Nombre)
	assert.True(t, p.Precio.Equal(decimal.RequireFromString("45.5")))
	assert.True(t, p.Stock.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "2026-09-06", p.FechaCaducidad.String())
}

func TestProductoGetByID_NoExiste(t *testing.T) {
	srv := servidorFalso(t, nil) // todo responde 404

	repo := rest.NewProductoRepository(rest.NewCliente(srv.URL, time.Second))
	p, err := repo.GetByID("999")
	require.NoError(t, err, "404 no es un error: el producto simplemente no existe")
	assert.Nil(t, p)
}

func TestProductoListar(t *testing.T) {
	srv := servidorFalso(t, map[string]func(http.ResponseWriter, *http.Request){
		"/productos": func(w http.ResponseWriter, r *http.Request) {
			respuestaJSON(w, http.StatusOK, `[
				{"id": 1, "nombre": "Manzana Roja", "categoria": "Frutas", "precio": 45.5, "stock": 10, "unidad": "kg", "fechaCaducidad": "2026-09-06", "proveedor": "Huerta El Paraíso"},
				{"id": "uuid-abc", "nombre": "Lechuga Romana", "categoria": "Verduras", "precio": 18, "stock": 4, "unidad": "pieza", "fechaCaducidad": "2026-09-03", "proveedor": "Rancho Verde"}
			]`)
		},
	})

	repo := rest.NewProductoRepository(rest.NewCliente(srv.URL, time.Second))
	lista, err := repo.Listar()
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "1", lista[0].ID, "id numérico normalizado a string")
	assert.Equal(t, "uuid-abc", lista[1].ID, "id string se conserva")
}

func TestActualizarStock_PatchParcial(t *testing.T) {
	var metodo string
	var cuerpo map[string]json.Number

	srv := servidorFalso(t, map[string]func(http.ResponseWriter, *http.Request){
		"/productos/p-1": func(w http.ResponseWriter, r *http.Request) {
			metodo = r.Method
			dec := json.NewDecoder(r.Body)
			dec.UseNumber()
			assert.NoError(t, dec.Decode(&cuerpo))
			respuestaJSON(w, http.StatusOK, `{}`)
		},
	})

	repo := rest.NewProductoRepository(rest.NewCliente(srv.URL, time.Second))
	require.NoError(t, repo.ActualizarStock("p-1", decimal.RequireFromString("27.5")))

	assert.Equal(t, http.MethodPatch, metodo)
	require.Len(t, cuerpo, 1, "el PATCH lleva únicamente el stock")
	assert.Equal(t, "27.5", cuerpo["stock"].String())
}

func TestEntradaCreate_EnviaElDocumentoCompleto(t *testing.T) {
	var recibido map[string]any

	srv := servidorFalso(t, map[string]func(http.ResponseWriter, *http.Request){
		"/entradas": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
			respuestaJSON(w, http.StatusCreated, `{}`)
		},
	})

	repo := rest.NewEntradaRepository(rest.NewCliente(srv.URL, time.Second))
	fecha, _ := fechas.Parse("2026-09-01")
	err := repo.Create(&entity.Entrada{
		ID:             "e-1",
		ProductoID:     "p-1",
		NombreProducto: "Manzana Roja",
		Cantidad:       decimal.NewFromInt(20),
		Fecha:          fecha,
		Proveedor:      "Huerta El Paraíso",
		PrecioCompra:   decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "e-1", recibido["id"])
	assert.Equal(t, "p-1", recibido["productoId"])
	assert.Equal(t, "Manzana Roja", recibido["nombreProducto"])
	assert.Equal(t, "2026-09-01", recibido["fecha"])
}

func TestErrorDelColaborador(t *testing.T) {
	srv := servidorFalso(t, map[string]func(http.ResponseWriter, *http.Request){
		"/salidas": func(w http.ResponseWriter, r *http.Request) {
			respuestaJSON(w, http.StatusInternalServerError, `{"error": "boom"}`)
		},
	})

	repo := rest.NewSalidaRepository(rest.NewCliente(srv.URL, time.Second))
	_, err := repo.Listar()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRepository)
}

func TestSalidaDelete(t *testing.T) {
	var metodo string
	srv := servidorFalso(t, map[string]func(http.ResponseWriter, *http.Request){
		"/salidas/s-1": func(w http.ResponseWriter, r *http.Request) {
			metodo = r.Method
			respuestaJSON(w, http.StatusOK, `{}`)
		},
	})

	repo := rest.NewSalidaRepository(rest.NewCliente(srv.URL, time.Second))
	require.NoError(t, repo.Delete("s-1"))
	assert.Equal(t, http.MethodDelete, metodo)
}
