package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Akimtsev/ops_console/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, noopLogger{})
}

func TestListOrders_ModernEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" {
			t.Fatalf("wrong path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("status") != "PLACED" {
			t.Fatalf("query lost: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{
			"orders":[{"id":"o-1","status":"PLACED"},{"id":"o-2","status":"ACCEPTED"}],
			"pagination":{"page":2,"pages":5,"total":92}}}`))
	})

	page, err := c.ListOrders(context.Background(), 2, 20, map[string]string{"status": "PLACED"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 2 || page.Page != 2 || page.Pages != 5 || page.Total != 92 {
		t.Fatalf("wrong page: %+v", page)
	}
	if page.Items[0].ID != "o-1" || page.Items[0].Status != domain.StatusPlaced {
		t.Fatalf("wrong first item: %+v", page.Items[0])
	}
}

func TestGetOrder_LegacyEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"message":true,"error":{"order":{"id":"o-7","status":"READY"}}}`))
	})

	order, err := c.GetOrder(context.Background(), "o-7")
	if err != nil || order == nil {
		t.Fatalf("unexpected: order=%v err=%v", order, err)
	}
	if order.ID != "o-7" || order.Status != domain.StatusReady {
		t.Fatalf("wrong order: %+v", order)
	}
}

func TestUpdateStatus_SendsPatchBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/orders/o-1/status" {
			t.Fatalf("wrong request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Status domain.Status `json:"status"`
			Notes  string        `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body.Status != domain.StatusPickedUp || body.Notes != "courier arrived" {
			t.Fatalf("wrong body: %+v", body)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"order":{"id":"o-1","status":"PICKED_UP"}}}`))
	})

	order, err := c.UpdateStatus(context.Background(), "o-1", domain.StatusPickedUp, "courier arrived")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// статус берём из ответа сервера, не из запроса
	if order.Status != domain.StatusPickedUp {
		t.Fatalf("server-confirmed status lost: %+v", order)
	}
}

func TestCancelOrder_ReturnsSummary(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders/o-3/cancel" {
			t.Fatalf("wrong request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Reason          string `json:"reason"`
			IssueRefund     bool   `json:"issueRefund"`
			RestoreVouchers bool   `json:"restoreVouchers"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Reason != "customer request" || !body.IssueRefund || body.RestoreVouchers {
			t.Fatalf("wrong body: %+v", body)
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{
			"order":{"id":"o-3","status":"CANCELLED"},
			"refund":{"refund_issued":true,"refund_amount":12.5}}}`))
	})

	order, summary, err := c.CancelOrder(context.Background(), "o-3", "customer request", true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.StatusCancelled {
		t.Fatalf("wrong order: %+v", order)
	}
	if summary == nil || !summary.RefundIssued || summary.RefundAmount != 12.5 {
		t.Fatalf("wrong summary: %+v", summary)
	}
}

func TestDo_Non2xxIsUpstreamRejection(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"status already changed"}`))
	})

	_, err := c.GetOrder(context.Background(), "o-1")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("want ErrUpstream, got %v", err)
	}
}

func TestDo_TransportFailureIsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // сервер уже мёртв

	c := NewClient(srv.URL, time.Second, noopLogger{})
	_, err := c.GetOrder(context.Background(), "o-1")
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("want ErrNetwork, got %v", err)
	}
}

func TestStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"stats":{"total_orders":10,"active_orders":3,"revenue":420.5}}}`))
	})

	stats, err := c.Stats(context.Background())
	if err != nil || stats.TotalOrders != 10 || stats.ActiveOrders != 3 {
		t.Fatalf("unexpected: %+v err=%v", stats, err)
	}
}
