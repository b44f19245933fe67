package ports

import (
	"context"

	"github.com/Akimtsev/ops_console/internal/domain"
)

// OrderGateway — доступ к REST-бэкенду доставки. Бэкенд авторитетен:
// подтверждённое им состояние всегда важнее запрошенного.
type OrderGateway interface {
	ListOrders(ctx context.Context, page, limit int, filters map[string]string) (domain.Page[domain.Order], error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// UpdateStatus — PATCH /orders/{id}/status; возвращает обновлённый заказ.
	UpdateStatus(ctx context.Context, orderID string, status domain.Status, notes string) (*domain.Order, error)

	// CancelOrder — POST /orders/{id}/cancel; помимо заказа возвращает
	// сводку по возврату денег и ваучеров.
	CancelOrder(ctx context.Context, orderID, reason string, issueRefund, restoreVouchers bool) (*domain.Order, *domain.CancelSummary, error)

	ListKitchens(ctx context.Context, page, limit int) (domain.Page[domain.Kitchen], error)
	Stats(ctx context.Context) (*domain.Stats, error)
}
