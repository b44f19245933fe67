package domain

import "time"

// Status — статус заказа из фиксированного перечисления бэкенда.
// Клиент никогда не придумывает собственных значений: граф переходов
// объявлен в internal/policy и является единственным источником истины.
type Status string

const (
	StatusPlaced         Status = "PLACED"
	StatusScheduled      Status = "SCHEDULED"
	StatusAccepted       Status = "ACCEPTED"
	StatusRejected       Status = "REJECTED"
	StatusPreparing      Status = "PREPARING"
	StatusReady          Status = "READY"
	StatusPickedUp       Status = "PICKED_UP"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
	StatusCancelled      Status = "CANCELLED"
	StatusFailed         Status = "FAILED"
)

func (s Status) String() string { return string(s) }

// IsValid — принадлежит ли значение объявленному перечислению.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlaced, StatusScheduled, StatusAccepted, StatusRejected,
		StatusPreparing, StatusReady, StatusPickedUp, StatusOutForDelivery,
		StatusDelivered, StatusCancelled, StatusFailed:
		return true
	default:
		return false
	}
}

// Role — роль оператора консоли. Источник — внешняя настройка,
// этот слой её только читает.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleKitchenStaff Role = "KITCHEN_STAFF"
)

// Order — заказ, каким его отдаёт бэкенд. Слой данных трактует бизнес-поля
// как непрозрачную нагрузку; значим только статус.
type Order struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	Status        Status    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	KitchenID     string    `json:"kitchen_id"`
	KitchenName   string    `json:"kitchen_name,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Items         []Item    `json:"items"`
	Total         float64   `json:"total"`
	CreatedAt     time.Time `json:"created_at"`

	// Provenance — производная классификация для экранов; бэкенд её
	// не отдаёт, заполняется на нашей стороне при чтении карточки.
	Provenance Provenance `json:"provenance,omitempty"`
}

type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Kitchen — кухня (точка приготовления).
type Kitchen struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Open    bool   `json:"open"`
}

// Stats — агрегатная сводка по заказам; производная от их состояния,
// поэтому инвалидируется вместе с семейством "order".
type Stats struct {
	TotalOrders  int     `json:"total_orders"`
	ActiveOrders int     `json:"active_orders"`
	Delivered    int     `json:"delivered"`
	Cancelled    int     `json:"cancelled"`
	Revenue      float64 `json:"revenue"`
}

// Page — одна страница списочного ресурса. Потребляется аккумулятором
// пагинации и отдельно не хранится.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// CancelSummary — итог отмены: что сделал бэкенд с оплатой и ваучерами.
type CancelSummary struct {
	RefundIssued     bool    `json:"refund_issued"`
	RefundAmount     float64 `json:"refund_amount,omitempty"`
	VouchersRestored int     `json:"vouchers_restored,omitempty"`
}
