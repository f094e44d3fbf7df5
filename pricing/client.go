package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API is the pricing backend as seen by the dashboard. Handlers depend on
// this interface so tests can substitute a stub.
type API interface {
	Clients(ctx context.Context) ([]Client, error)
	Items(ctx context.Context) ([]Item, error)
	Units(ctx context.Context) ([]Unit, error)
	Categories(ctx context.Context) ([]Category, error)

	Tariffs(ctx context.Context, f TariffFilter) ([]Tariff, error)
	CreateTariff(ctx context.Context, in TariffInput) (string, error)
	UpdateTariff(ctx context.Context, id int, in TariffInput) (string, error)
	DeleteTariff(ctx context.Context, id int) (string, error)

	RangeTariffs(ctx context.Context, f TariffFilter) ([]RangeTariff, error)
	CreateRangeTariff(ctx context.Context, in TariffInput) (string, error)
	UpdateRangeTariff(ctx context.Context, id int, in TariffInput) (string, error)
	DeleteRangeTariff(ctx context.Context, id int) (string, error)

	BulkUpdate(ctx context.Context, req BulkUpdateRequest, idempotencyKey string) (string, error)

	ExpiringClients(ctx context.Context) ([]Client, error)
	HistoricalTariffs(ctx context.Context, f HistoryFilter) ([]HistoricalTariff, error)
	ClientTariffs(ctx context.Context, clienteID int) ([]ClientTariff, error)

	PrepValues(ctx context.Context) ([]PrepValue, error)
	CreatePrepValue(ctx context.Context, in PrepValueInput) (string, error)
}

// RemoteError is a non-2xx answer from the pricing API. Detail carries the
// server's own error text when the body had one, otherwise it is empty and
// callers fall back to a generic message.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("pricing api: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("pricing api: %d", e.Status)
}

// HTTPClient talks to the pricing API over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the API rooted at baseURL. The timeout
// bounds every individual call; there is no retry policy.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// messageBody is the {message}/{error} envelope the API answers writes with.
type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key, ok := idempotencyKeyFrom(ctx); ok {
		req.Header.Set("X-Idempotency-Key", key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var mb messageBody
		detail := ""
		if json.Unmarshal(raw, &mb) == nil {
			detail = mb.Error
			if detail == "" {
				detail = mb.Message
			}
		}
		return &RemoteError{Status: resp.StatusCode, Detail: detail}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

type idempotencyKeyCtx struct{}

func withIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

func idempotencyKeyFrom(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKeyCtx{}).(string)
	return key, ok && key != ""
}

func (c *HTTPClient) Clients(ctx context.Context) ([]Client, error) {
	var list []Client
	if err := c.do(ctx, http.MethodGet, "/api/clientes", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) Items(ctx context.Context) ([]Item, error) {
	var list []Item
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) Units(ctx context.Context) ([]Unit, error) {
	var list []Unit
	if err := c.do(ctx, http.MethodGet, "/api/unidades", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]Category, error) {
	var list []Category
	if err := c.do(ctx, http.MethodGet, "/api/categorias", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// tariffQuery maps a filter onto the query parameter names the API expects.
// The validity window is only forwarded when both ends are present, matching
// the server-side pairing of fechaInicio/fechaFin.
func tariffQuery(f TariffFilter) url.Values {
	q := url.Values{}
	if f.Cliente != "" {
		q.Set("cliente", f.Cliente)
	}
	if f.Item != "" {
		q.Set("item", f.Item)
	}
	if f.Unidad != "" {
		q.Set("unidad", f.Unidad)
	}
	if f.Categoria != "" {
		q.Set("categoria", f.Categoria)
	}
	if f.FechaInicio != "" && f.FechaFin != "" {
		q.Set("fechaInicio", f.FechaInicio)
		q.Set("fechaFin", f.FechaFin)
	}
	return q
}

func (c *HTTPClient) Tariffs(ctx context.Context, f TariffFilter) ([]Tariff, error) {
	var list []Tariff
	if err := c.do(ctx, http.MethodGet, "/api/tarifario", tariffQuery(f), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateTariff(ctx context.Context, in TariffInput) (string, error) {
	return c.message(ctx, http.MethodPost, "/api/tarifario", in)
}

func (c *HTTPClient) UpdateTariff(ctx context.Context, id int, in TariffInput) (string, error) {
	return c.message(ctx, http.MethodPut, "/api/tarifario/"+strconv.Itoa(id), in)
}

func (c *HTTPClient) DeleteTariff(ctx context.Context, id int) (string, error) {
	return c.message(ctx, http.MethodDelete, "/api/tarifario/"+strconv.Itoa(id), nil)
}

func (c *HTTPClient) RangeTariffs(ctx context.Context, f TariffFilter) ([]RangeTariff, error) {
	var list []RangeTariff
	if err := c.do(ctx, http.MethodGet, "/api/tarifarioRango", tariffQuery(f), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreateRangeTariff(ctx context.Context, in TariffInput) (string, error) {
	return c.message(ctx, http.MethodPost, "/api/tarifarioRango", in)
}

func (c *HTTPClient) UpdateRangeTariff(ctx context.Context, id int, in TariffInput) (string, error) {
	return c.message(ctx, http.MethodPut, "/api/tarifarioRango/"+strconv.Itoa(id), in)
}

func (c *HTTPClient) DeleteRangeTariff(ctx context.Context, id int) (string, error) {
	return c.message(ctx, http.MethodDelete, "/api/tarifarioRango/"+strconv.Itoa(id), nil)
}

// BulkUpdate performs the single bulk price adjustment attempt. The
// idempotency key travels as a header so the JSON payload stays exactly the
// documented field set.
func (c *HTTPClient) BulkUpdate(ctx context.Context, req BulkUpdateRequest, idempotencyKey string) (string, error) {
	if idempotencyKey != "" {
		ctx = withIdempotencyKey(ctx, idempotencyKey)
	}
	return c.message(ctx, http.MethodPost, "/api/actualizacion_masiva_tarifas", req)
}

func (c *HTTPClient) ExpiringClients(ctx context.Context) ([]Client, error) {
	var list []Client
	if err := c.do(ctx, http.MethodGet, "/api/tarifas-vencidas", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) HistoricalTariffs(ctx context.Context, f HistoryFilter) ([]HistoricalTariff, error) {
	q := url.Values{}
	if f.Cliente != "" {
		q.Set("cliente", f.Cliente)
	}
	if f.Categoria != "" {
		q.Set("categoria", f.Categoria)
	}
	if f.Unidad != "" {
		q.Set("unidad", f.Unidad)
	}
	if f.Item != "" {
		q.Set("item", f.Item)
	}
	if f.FechaInicio != "" {
		q.Set("fecha_inicio", f.FechaInicio)
	}
	if f.FechaFin != "" {
		q.Set("fecha_fin", f.FechaFin)
	}
	if f.FechaMovimiento != "" {
		q.Set("fecha_movimiento", f.FechaMovimiento)
	}

	var list []HistoricalTariff
	if err := c.do(ctx, http.MethodGet, "/api/tarifas_historicas", q, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) ClientTariffs(ctx context.Context, clienteID int) ([]ClientTariff, error) {
	q := url.Values{}
	q.Set("cliente_id", strconv.Itoa(clienteID))

	var wrapper struct {
		Tarifas []ClientTariff `json:"tarifas"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tarifarioUnico", q, nil, &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Tarifas, nil
}

func (c *HTTPClient) PrepValues(ctx context.Context) ([]PrepValue, error) {
	var list []PrepValue
	if err := c.do(ctx, http.MethodGet, "/api/reportes/valores_prep", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) CreatePrepValue(ctx context.Context, in PrepValueInput) (string, error) {
	return c.message(ctx, http.MethodPost, "/api/reportes/valores_prep", in)
}

// message sends a write and returns the server's message text.
func (c *HTTPClient) message(ctx context.Context, method, path string, body any) (string, error) {
	var mb messageBody
	if err := c.do(ctx, method, path, nil, body, &mb); err != nil {
		return "", err
	}
	return mb.Message, nil
}
