// Package drinkapi adaptador tipado del API remoto de productos. Cada
// operación de dominio se traduce a exactamente una llamada HTTP/JSON
// contra la ruta base fija (/api/v1), sin autenticación, sin reintentos y
// sin manejo por código de estado: cualquier respuesta no 2xx o fallo de
// transporte se propaga como un único ErrUpstream opaco.
//
// Usa net/http de la librería estándar; no requiere SDK de terceros.
package drinkapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/drinktrace-web/internal/domain"
)

// Client cliente HTTP del API de productos.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. baseURL debe apuntar a la raíz del API
// (ej. http://localhost:3000/api/v1); se tolera la barra final.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do ejecuta una petición JSON y decodifica la respuesta en out (si no es
// nil). El cuerpo de error del servidor no se interpreta: solo se registra
// el estado en el error devuelto.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo de %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("construir petición %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: leer respuesta de %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s devolvió %d", domain.ErrUpstream, method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: decodificar respuesta de %s %s: %v", domain.ErrUpstream, method, path, err)
		}
	}
	return nil
}
