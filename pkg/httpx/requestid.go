package httpx

import (
	"github.com/Akimtsev/ops_console/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SessionMiddleware — читает заголовки консоли и кладёт их в контекст:
// X-Acting-Role (роль оператора) и X-Session-ID (сессия ленты).
// Отсутствующая роль заменяется на defaultRole.
func SessionMiddleware(defaultRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader("X-Acting-Role")
		if role == "" {
			role = defaultRole
		}

		ctx := ctxmeta.WithRole(c.Request.Context(), role)
		if sid := c.GetHeader("X-Session-ID"); sid != "" {
			ctx = ctxmeta.WithSessionID(ctx, sid)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
