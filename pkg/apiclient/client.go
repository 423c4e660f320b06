// Package apiclient es el SDK HTTP de la API de TilesTrack: sesión con token
// Bearer, decodificación tipada y errores de API con el mensaje del servidor.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// APIError error devuelto por el servidor con su cuerpo {"error": ...} decodificado.
type APIError struct {
	StatusCode int
	Message    string
	// AvailableStock viene solo en rechazos de venta por stock insuficiente.
	AvailableStock *int64
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Session guarda el token Bearer de la sesión activa. Es segura para uso
// concurrente: el dashboard refresca datos desde varias goroutines.
type Session struct {
	mu    sync.RWMutex
	token string
}

// SetToken instala el token de la sesión.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token devuelve el token actual ("" si no hay sesión).
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Clear borra la sesión (logout).
func (s *Session) Clear() { s.SetToken("") }

// Config parámetros de construcción del cliente.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client cliente HTTP de la API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New construye el cliente. El timeout por defecto es 30 segundos.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("apiclient: BaseURL requerido")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("apiclient: BaseURL inválido: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		session:    &Session{},
	}, nil
}

// Session expone la sesión del cliente (token actual, logout).
func (c *Client) Session() *Session { return c.session }

// BaseURL devuelve la raíz de la API sin slash final.
func (c *Client) BaseURL() string { return c.baseURL }

// do ejecuta la petición y decodifica la respuesta en out (si out no es nil).
// Un status fuera de 2xx se convierte en *APIError con el mensaje del servidor.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		u += "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: codificar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("apiclient: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// download ejecuta un GET y devuelve los bytes crudos (CSV, PDF).
func (c *Client) download(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			values.Set(k, v)
		}
		u += "?" + values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("apiclient: crear petición: %w", err)
	}
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

// decodeAPIError interpreta el cuerpo {"error": ..., "available_stock": ...}.
// Si el cuerpo no es JSON el mensaje queda como texto plano.
func decodeAPIError(status int, raw []byte) *APIError {
	var body struct {
		Error          string `json:"error"`
		AvailableStock *int64 `json:"available_stock"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return &APIError{StatusCode: status, Message: body.Error, AvailableStock: body.AvailableStock}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(raw))}
}
