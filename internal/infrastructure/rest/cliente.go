// Package rest implementa los puertos de persistencia sobre el colaborador
// REST externo (semántica json-server: colecciones /productos, /entradas y
// /salidas con JSON plano).
//
// Usa net/http de la stdlib; no requiere librerías de terceros.
package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/fruteria-api/internal/domain"
)

// Cliente HTTP hacia el repositorio REST. Cada operación es una petición
// independiente; no existe transacción entre peticiones.
type Cliente struct {
	baseURL string
	hc      *http.Client
}

// NewCliente construye el cliente. timeout aplica por petición.
func NewCliente(baseURL string, timeout time.Duration) *Cliente {
	return &Cliente{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *Cliente) get(path string, out any) error {
	return c.do(http.MethodGet, path, nil, out)
}

func (c *Cliente) post(path string, body, out any) error {
	return c.do(http.MethodPost, path, body, out)
}

func (c *Cliente) patch(path string, body, out any) error {
	return c.do(http.MethodPatch, path, body, out)
}

func (c *Cliente) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil)
}

// do ejecuta la petición y decodifica la respuesta en out (si out no es nil).
// 404 se traduce a domain.ErrNotFound; cualquier otro estado fuera de 2xx se
// reporta como domain.ErrRepository.
func (c *Cliente) do(method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("codificar cuerpo %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRepository, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s %s: estado %d", domain.ErrRepository, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decodificar respuesta de %s %s: %v", domain.ErrRepository, method, path, err)
	}
	return nil
}

// wireID acepta los dos formatos de id que usa el colaborador: números
// (autoincrement de json-server) y strings (UUIDs generados por esta app).
type wireID string

// UnmarshalJSON tolera número o string.
func (w *wireID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*w = wireID(n.String())
	return nil
}

// MarshalJSON siempre emite string; json-server acepta ids provistos.
func (w wireID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(w))
}
