// Пакет upstream — клиент REST-бэкенда доставки. Бэкенд авторитетен:
// слой данных держит лишь eventually-consistent копию его состояния.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/ports"
	"github.com/Akimtsev/ops_console/pkg/ctxmeta"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var _ ports.OrderGateway = (*Client)(nil)

// maxBodyBytes — предохранитель от неограниченного чтения тела ответа.
const maxBodyBytes = 4 << 20

type Client struct {
	baseURL string
	httpc   *http.Client
	log     ports.Logger
}

// NewClient — конструктор. Таймаут один на клиент, per-request таймаутов
// этот слой не накладывает — только то, что даёт транспорт.
func NewClient(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// ListOrders — GET /orders с пагинацией и фильтрами.
func (c *Client) ListOrders(ctx context.Context, page, limit int, filters map[string]string) (domain.Page[domain.Order], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	for k, v := range filters {
		q.Set(k, v)
	}

	payload, err := c.do(ctx, http.MethodGet, "/orders", q, nil)
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}

	var body struct {
		Orders     []domain.Order `json:"orders"`
		Pagination pagination     `json:"pagination"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("%w: orders payload: %v", domain.ErrBadEnvelope, err)
	}
	return domain.Page[domain.Order]{
		Items: body.Orders,
		Page:  body.Pagination.Page,
		Pages: body.Pagination.Pages,
		Total: body.Pagination.Total,
	}, nil
}

// GetOrder — GET /orders/{id}; (nil, nil), если заказа нет.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	payload, err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, nil)
	if err != nil {
		return nil, err
	}
	return unmarshalOrder(payload)
}

// UpdateStatus — PATCH /orders/{id}/status. Возвращённый бэкендом статус
// авторитетен; запрошенное значение дальше никого не интересует.
func (c *Client) UpdateStatus(ctx context.Context, orderID string, status domain.Status, notes string) (*domain.Order, error) {
	req := struct {
		Status domain.Status `json:"status"`
		Notes  string        `json:"notes,omitempty"`
	}{Status: status, Notes: notes}

	payload, err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(orderID)+"/status", nil, req)
	if err != nil {
		return nil, err
	}
	return unmarshalOrder(payload)
}

// CancelOrder — POST /orders/{id}/cancel с флагами возврата денег и ваучеров.
func (c *Client) CancelOrder(ctx context.Context, orderID, reason string, issueRefund, restoreVouchers bool) (*domain.Order, *domain.CancelSummary, error) {
	req := struct {
		Reason          string `json:"reason"`
		IssueRefund     bool   `json:"issueRefund"`
		RestoreVouchers bool   `json:"restoreVouchers"`
	}{Reason: reason, IssueRefund: issueRefund, RestoreVouchers: restoreVouchers}

	payload, err := c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(orderID)+"/cancel", nil, req)
	if err != nil {
		return nil, nil, err
	}

	var body struct {
		Order  *domain.Order         `json:"order"`
		Refund *domain.CancelSummary `json:"refund"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Order == nil {
		return nil, nil, fmt.Errorf("%w: cancel payload", domain.ErrBadEnvelope)
	}
	return body.Order, body.Refund, nil
}

// ListKitchens — GET /kitchens с пагинацией.
func (c *Client) ListKitchens(ctx context.Context, page, limit int) (domain.Page[domain.Kitchen], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	payload, err := c.do(ctx, http.MethodGet, "/kitchens", q, nil)
	if err != nil {
		return domain.Page[domain.Kitchen]{}, err
	}

	var body struct {
		Kitchens   []domain.Kitchen `json:"kitchens"`
		Pagination pagination       `json:"pagination"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return domain.Page[domain.Kitchen]{}, fmt.Errorf("%w: kitchens payload: %v", domain.ErrBadEnvelope, err)
	}
	return domain.Page[domain.Kitchen]{
		Items: body.Kitchens,
		Page:  body.Pagination.Page,
		Pages: body.Pagination.Pages,
		Total: body.Pagination.Total,
	}, nil
}

// Stats — GET /stats; агрегатная сводка по заказам.
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	payload, err := c.do(ctx, http.MethodGet, "/stats", nil, nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Stats *domain.Stats `json:"stats"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Stats == nil {
		return nil, fmt.Errorf("%w: stats payload", domain.ErrBadEnvelope)
	}
	return body.Stats, nil
}

// do — один HTTP-вызов: транспортная ошибка -> ErrNetwork, не-2xx ->
// ErrUpstream с вербатим-сообщением сервера, дальше нормализация конверта.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if reqID, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set("X-Request-ID", reqID)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warnf(ctx, "upstream %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrNetwork, err)
	}
	c.log.Infof(ctx, "upstream %s %s status=%d took=%s", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", domain.ErrUpstream, resp.StatusCode, rejectionText(raw))
	}
	return decodeEnvelope(raw)
}

// rejectionText — текст отказа из тела не-2xx ответа, как его отдал сервер.
func rejectionText(raw []byte) string {
	var env envelope
	if json.Unmarshal(raw, &env) == nil {
		if msg := messageText(&env); msg != "" {
			return msg
		}
	}
	return "request rejected"
}

func unmarshalOrder(payload json.RawMessage) (*domain.Order, error) {
	var body struct {
		Order *domain.Order `json:"order"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("%w: order payload: %v", domain.ErrBadEnvelope, err)
	}
	return body.Order, nil
}

type pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}
