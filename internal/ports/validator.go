package ports

import (
	"context"

	"github.com/Akimtsev/ops_console/internal/domain"
)

// EventValidator — проверка события смены статуса перед применением.
type EventValidator interface {
	Validate(ctx context.Context, event *domain.StatusEvent) error
}

// OrderAuditor — проверка выгруженного заказа (audit-CLI).
type OrderAuditor interface {
	Audit(ctx context.Context, order *domain.Order) error
}
