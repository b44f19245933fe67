package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Akimtsev/ops_console/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного заказа
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	id := "ord-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		ID:            id,
		Number:        "N-" + UniqSuffix(),
		Status:        domain.StatusPlaced,
		CustomerName:  "John Smith",
		CustomerPhone: "+1-202-555-01",
		KitchenID:     "k-" + UniqSuffix(),
		KitchenName:   "Downtown Kitchen",
		PaymentMethod: "card",
		Items: []domain.Item{
			{Name: "Margherita", Quantity: 1, Price: 9.5},
			{Name: "Cola", Quantity: 2, Price: 1.75},
		},
		Total:     13,
		CreatedAt: now,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithID(id string) func(*domain.Order) {
	return func(o *domain.Order) { o.ID = id }
}

func WithStatus(s domain.Status) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = s }
}

func WithKitchen(kitchenID string) func(*domain.Order) {
	return func(o *domain.Order) { o.KitchenID = kitchenID }
}

func WithItems(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Items = make([]domain.Item, 0, n)
		total := 0.0
		for i := 0; i < n; i++ {
			price := float64(5 * (i + 1))
			o.Items = append(o.Items, domain.Item{
				Name:     "Item-" + UniqSuffix(),
				Quantity: 1,
				Price:    price,
			})
			total += price
		}
		o.Total = total
	}
}

// MakeStatusEvent — валидное событие смены статуса для заданного заказа.
func MakeStatusEvent(orderID string, from, to domain.Status) domain.StatusEvent {
	return domain.StatusEvent{
		OrderID:    orderID,
		OldStatus:  from,
		NewStatus:  to,
		ChangedBy:  "itest",
		OccurredAt: time.Now().UTC().Truncate(time.Second),
	}
}
