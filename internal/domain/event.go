package domain

import "time"

// StatusEvent — событие смены статуса, публикуемое бэкендом
// (внешний планировщик, другие консоли). Консьюмер применяет его
// к локальному представлению, чтобы экраны сходились без опроса.
type StatusEvent struct {
	OrderID    string    `json:"order_id"`
	OldStatus  Status    `json:"old_status,omitempty"`
	NewStatus  Status    `json:"new_status"`
	ChangedBy  string    `json:"changed_by,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
