package wms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jhoicas/turnover-api/internal/domain"
	"github.com/jhoicas/turnover-api/pkg/config"
)

const (
	// defaultRetryAfter espera cuando el 429 no trae header Retry-After.
	defaultRetryAfter = 30 * time.Second
	// backoffBase y backoffMax acotan el backoff exponencial entre reintentos.
	backoffBase = time.Second
	backoffMax  = 5 * time.Minute
	// askSuccess valor del campo ask cuando la operación fue aceptada.
	askSuccess = "Success"
	// maxErrorBody tope de cuerpo de error que se conserva en el mensaje.
	maxErrorBody = 500
)

// Fetcher define el puerto de salida hacia el WMS para las capas de aplicación.
// La implementación concreta pagina sobre HTTP; para tests se puede inyectar un fake.
type Fetcher interface {
	// FetchAll descarga todas las páginas del servicio indicado con los
	// parámetros extra dados (rangos de fecha, etc.).
	FetchAll(ctx context.Context, service string, params map[string]string) ([]Record, error)
}

// ── Implementación HTTP ────────────────────────────────────────────────────────

// Client llamadas al web-service del WMS. Todas las operaciones son POST JSON
// a una URL única; el campo service selecciona la operación.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userToken  string
	pageSize   int
	maxRetries int
}

var _ Fetcher = (*Client)(nil)

// NewClient construye el cliente con la configuración del WMS.
func NewClient(cfg config.WMSConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:    cfg.BaseURL,
		userToken:  cfg.UserToken,
		pageSize:   cfg.PageSize,
		maxRetries: cfg.MaxRetries,
	}
}

// FetchPage pide una página de un servicio. No reintenta: los errores tipados
// (RateLimitedError, UpstreamError, ErrWmsTimeout) los maneja el que llama.
// El token nunca se incluye en mensajes de error.
func (c *Client) FetchPage(ctx context.Context, service string, params map[string]string, page int) (*Page, error) {
	payload := map[string]any{
		"service":    service,
		"user_token": c.userToken,
		"page":       page,
		"pageSize":   c.pageSize,
	}
	for k, v := range params {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("wms: serializar petición: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("wms: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("wms: %s: %w", service, domain.ErrWmsTimeout)
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("wms: %s cancelado: %w", service, ctx.Err())
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, fmt.Errorf("wms: %s: %w", service, domain.ErrWmsTimeout)
		}
		return nil, fmt.Errorf("wms: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20)) // max 10 MB
	if err != nil {
		return nil, fmt.Errorf("wms: leer respuesta: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &domain.RateLimitedError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{Status: resp.StatusCode, Message: truncate(string(rawBody), maxErrorBody)}
	}

	var apiResp apiResponse
	dec := json.NewDecoder(bytes.NewReader(rawBody))
	dec.UseNumber() // conserva precisión de IDs numéricos largos
	if err := dec.Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("wms: parsear respuesta de %s: %w", service, err)
	}

	if apiResp.Ask != askSuccess {
		return nil, &domain.UpstreamError{Status: resp.StatusCode, Ask: apiResp.Ask, Message: truncate(apiResp.Message, maxErrorBody)}
	}

	return &Page{Records: apiResp.Data, TotalCount: int(apiResp.TotalCount)}, nil
}

// FetchAll pagina un servicio hasta agotar los resultados. Ante rate limiting
// reintenta la misma página con backoff exponencial, nunca menor que el
// Retry-After anunciado por el servidor; cualquier otro error corta la descarga.
func (c *Client) FetchAll(ctx context.Context, service string, params map[string]string) ([]Record, error) {
	var all []Record
	page := 1
	attempt := 0

	for {
		p, err := c.FetchPage(ctx, service, params, page)
		if err != nil {
			var rle *domain.RateLimitedError
			if errors.As(err, &rle) && attempt < c.maxRetries {
				attempt++
				if werr := c.waitRetry(ctx, attempt, rle.RetryAfter); werr != nil {
					return nil, werr
				}
				continue
			}
			return nil, err
		}
		attempt = 0

		all = append(all, p.Records...)
		if len(p.Records) == 0 || len(all) >= p.TotalCount {
			return all, nil
		}
		page++
	}
}

// waitRetry duerme antes de reintentar una página limitada: backoff exponencial
// según el número de intento, con piso en el Retry-After del servidor.
func (c *Client) waitRetry(ctx context.Context, attempt int, retryAfter time.Duration) error {
	wait := backoffMax
	if shift := attempt - 1; shift >= 0 && shift < 9 {
		wait = backoffBase << shift
	}
	if retryAfter > wait {
		wait = retryAfter
	}
	if wait > backoffMax {
		wait = backoffMax
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("wms: reintento cancelado: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// SplitWindow parte [from, to] en sub-ventanas de hasta maxDays días.
// El WMS rechaza rangos muy largos en el inventory log (~6 meses).
func SplitWindow(from, to time.Time, maxDays int) []Window {
	if maxDays <= 0 || !from.Before(to) {
		return []Window{{From: from, To: to}}
	}

	var windows []Window
	cur := from
	for cur.Before(to) {
		next := cur.AddDate(0, 0, maxDays)
		if next.After(to) {
			next = to
		}
		windows = append(windows, Window{From: cur, To: next})
		cur = next.Add(time.Second)
	}
	return windows
}

// parseRetryAfter interpreta el header Retry-After en segundos; default 30 s.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return defaultRetryAfter
	}
	return time.Duration(secs) * time.Second
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
