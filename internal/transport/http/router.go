package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/fetch"
	"github.com/Akimtsev/ops_console/internal/ports"
	"github.com/Akimtsev/ops_console/pkg/ctxmeta"
	"github.com/Akimtsev/ops_console/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handler struct {
	service ports.ConsoleService
	log     ports.Logger
	timeout time.Duration
}

func NewHandler(service ports.ConsoleService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{service: service, log: log, timeout: timeout}
}

// NewRouter — маршруты консоли. otelServiceName непустой — включается
// серверный трейсинг gin.
func NewRouter(h *Handler, defaultRole, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.SessionMiddleware(defaultRole))
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/orders", h.listOrders)
	r.GET("/orders/feed", h.orderFeed)
	r.POST("/orders/feed/reset", h.resetOrderFeed)
	r.GET("/orders/:id", h.getOrder)
	r.PATCH("/orders/:id/status", h.updateStatus)
	r.POST("/orders/:id/cancel", h.cancelOrder)

	r.GET("/kitchens", h.listKitchens)
	r.GET("/stats", h.stats)

	r.POST("/session/logout", h.logout)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

// фильтры списка, которые пробрасываются на бэкенд как есть
var filterKeys = []string{"status", "kitchen_id", "search"}

func (h *Handler) listOrders(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	page, limit := httpx.ParsePageLimit(c, 20, 100)
	force := c.Query("force") == "true"

	res, err := h.service.Orders(ctx, page, limit, queryFilters(c), force)
	if err != nil {
		h.fail(c, "Orders", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) getOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.Order(ctx, id)
	if err != nil {
		h.fail(c, "Order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) orderFeed(c *gin.Context) {
	sid, ok := ctxmeta.SessionIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	items, hasMore, err := h.service.OrderFeed(ctx, sid, queryFilters(c))
	if err != nil {
		h.fail(c, "OrderFeed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "has_more": hasMore})
}

func (h *Handler) resetOrderFeed(c *gin.Context) {
	sid, ok := ctxmeta.SessionIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID"})
		return
	}
	h.service.ResetOrderFeed(sid)
	c.Status(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	target := domain.Status(req.Status)
	if !target.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.service.UpdateStatus(ctx, id, target, actingRole(c), req.Notes)
	if err != nil {
		h.fail(c, "UpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type cancelRequest struct {
	Reason          string `json:"reason" binding:"required"`
	IssueRefund     bool   `json:"issue_refund"`
	RestoreVouchers bool   `json:"restore_vouchers"`
}

func (h *Handler) cancelOrder(c *gin.Context) {
	id := c.Param("id")

	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, summary, err := h.service.CancelOrder(ctx, id, req.Reason, req.IssueRefund, req.RestoreVouchers, actingRole(c))
	if err != nil {
		h.fail(c, "CancelOrder", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "refund": summary})
}

func (h *Handler) listKitchens(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	page, limit := httpx.ParsePageLimit(c, 20, 100)
	res, err := h.service.Kitchens(ctx, page, limit)
	if err != nil {
		h.fail(c, "Kitchens", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) stats(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.service.Stats(ctx)
	if err != nil {
		h.fail(c, "Stats", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) logout(c *gin.Context) {
	h.service.EndSession(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// requestContext — контекст обработчика с таймаутом (если настроен).
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// fail — перевод доменных ошибок в HTTP-статусы.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrMutationInFlight):
		status, msg = http.StatusConflict, "another change for this order is in flight"
	case errors.Is(err, fetch.ErrThrottled):
		status, msg = http.StatusTooManyRequests, "duplicate request dropped"
	case errors.Is(err, domain.ErrUpstream):
		// текст отказа бэкенда показываем как есть, он нужен оператору
		status, msg = http.StatusBadGateway, err.Error()
	case errors.Is(err, domain.ErrBadEnvelope):
		status, msg = http.StatusBadGateway, "upstream rejected the request"
	case errors.Is(err, domain.ErrNetwork):
		status, msg = http.StatusGatewayTimeout, "upstream unreachable"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		status, msg = http.StatusGatewayTimeout, "request timed out"
	}

	if status >= 500 {
		h.log.Errorf(c.Request.Context(), "%s failed err=%v", op, err)
	} else {
		h.log.Warnf(c.Request.Context(), "%s rejected err=%v", op, err)
	}
	c.JSON(status, gin.H{"error": msg})
}

func actingRole(c *gin.Context) domain.Role {
	role, _ := ctxmeta.RoleFromContext(c.Request.Context())
	return domain.Role(role)
}

func queryFilters(c *gin.Context) map[string]string {
	var filters map[string]string
	for _, k := range filterKeys {
		if v := c.Query(k); v != "" {
			if filters == nil {
				filters = make(map[string]string, len(filterKeys))
			}
			filters[k] = v
		}
	}
	return filters
}
