package ports

import (
	"context"

	"github.com/Akimtsev/ops_console/internal/domain"
)

// ConsoleService — операции консоли, которые видит транспортный слой.
type ConsoleService interface {
	Order(ctx context.Context, orderID string) (*domain.Order, error)
	Orders(ctx context.Context, page, limit int, filters map[string]string, force bool) (domain.Page[domain.Order], error)
	OrderFeed(ctx context.Context, sessionID string, filters map[string]string) (items []domain.Order, hasMore bool, err error)
	ResetOrderFeed(sessionID string)
	UpdateStatus(ctx context.Context, orderID string, target domain.Status, role domain.Role, notes string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string, issueRefund, restoreVouchers bool, role domain.Role) (*domain.Order, *domain.CancelSummary, error)
	Kitchens(ctx context.Context, page, limit int) (domain.Page[domain.Kitchen], error)
	Stats(ctx context.Context) (*domain.Stats, error)
	EndSession(ctx context.Context)
}
