//go:build integration

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/Akimtsev/ops_console/internal/domain"
)

// UpstreamStub — бэкенд доставки в миниатюре: держит заказы в памяти
// и отвечает конвертом {"success": true, "data": ...}. Достаточно для
// интеграционных прогонов без настоящего бэкенда.
type UpstreamStub struct {
	mu       sync.Mutex
	orders   map[string]domain.Order
	order    []string // порядок вставки для детерминированных списков
	kitchens []domain.Kitchen

	// счётчики для утверждений в тестах
	ListCalls int
	GetCalls  int

	srv *httptest.Server
}

func NewUpstreamStub(orders ...domain.Order) *UpstreamStub {
	s := &UpstreamStub{
		orders: make(map[string]domain.Order, len(orders)),
		kitchens: []domain.Kitchen{
			{ID: "k-1", Name: "Downtown Kitchen", Open: true},
			{ID: "k-2", Name: "Uptown Kitchen", Open: false},
		},
	}
	for _, o := range orders {
		s.orders[o.ID] = o
		s.order = append(s.order, o.ID)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders", s.listOrders)
	mux.HandleFunc("GET /orders/{id}", s.getOrder)
	mux.HandleFunc("PATCH /orders/{id}/status", s.updateStatus)
	mux.HandleFunc("POST /orders/{id}/cancel", s.cancelOrder)
	mux.HandleFunc("GET /kitchens", s.listKitchens)
	mux.HandleFunc("GET /stats", s.stats)

	s.srv = httptest.NewServer(mux)
	return s
}

func (s *UpstreamStub) URL() string { return s.srv.URL }
func (s *UpstreamStub) Close()      { s.srv.Close() }

// Put — добавить или заменить заказ.
func (s *UpstreamStub) Put(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; !ok {
		s.order = append(s.order, o.ID)
	}
	s.orders[o.ID] = o
}

func (s *UpstreamStub) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++

	status := r.URL.Query().Get("status")
	items := make([]domain.Order, 0, len(s.order))
	for _, id := range s.order {
		o := s.orders[id]
		if status != "" && string(o.Status) != status {
			continue
		}
		items = append(items, o)
	}

	writeSuccess(w, map[string]any{
		"orders": items,
		"pagination": map[string]int{
			"page": 1, "pages": 1, "total": len(items),
		},
	})
}

func (s *UpstreamStub) getOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GetCalls++

	o, ok := s.orders[r.PathValue("id")]
	if !ok {
		writeSuccess(w, map[string]any{"order": nil})
		return
	}
	writeSuccess(w, map[string]any{"order": o})
}

func (s *UpstreamStub) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "order not found"})
		return
	}
	o.Status = req.Status
	s.orders[o.ID] = o
	writeSuccess(w, map[string]any{"order": o})
}

func (s *UpstreamStub) cancelOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason      string `json:"reason"`
		IssueRefund bool   `json:"issueRefund"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[r.PathValue("id")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "order not found"})
		return
	}
	o.Status = domain.StatusCancelled
	s.orders[o.ID] = o

	refund := domain.CancelSummary{RefundIssued: req.IssueRefund}
	if req.IssueRefund {
		refund.RefundAmount = o.Total
	}
	writeSuccess(w, map[string]any{"order": o, "refund": refund})
}

// listKitchens отвечает легаси-формой конверта ({"message": true,
// "error": payload}) — вторая живая версия бэкенда; так обе ветки
// нормализации проверяются живым трафиком.
func (s *UpstreamStub) listKitchens(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": true,
		"error": map[string]any{
			"kitchens": s.kitchens,
			"pagination": map[string]int{
				"page": 1, "pages": 1, "total": len(s.kitchens),
			},
		},
	})
}

func (s *UpstreamStub) stats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := domain.Stats{TotalOrders: len(s.orders)}
	for _, o := range s.orders {
		switch o.Status {
		case domain.StatusDelivered:
			st.Delivered++
			st.Revenue += o.Total
		case domain.StatusCancelled:
			st.Cancelled++
		default:
			st.ActiveOrders++
		}
	}
	writeSuccess(w, map[string]any{"stats": st})
}

func writeSuccess(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}
