package validate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/ports"
)

// Проверка, что OrderAuditor удовлетворяет интерфейсу OrderAuditor.
var _ ports.OrderAuditor = (*OrderAuditor)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка аудита заказа.
var ErrInvalidOrder = errors.New("order audit failed")

// OrderAuditor — проверка выгруженных заказов (CLI-аудит дампов бэкенда).
type OrderAuditor struct{}

// NewOrderAuditor — конструктор OrderAuditor.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderAuditor() *OrderAuditor { return &OrderAuditor{} }

// Audit — проверяет корректность полей заказа.
func (a *OrderAuditor) Audit(_ context.Context, order *domain.Order) error {
	if err := a.auditCore(order); err != nil {
		return err
	}
	return a.auditItems(order)
}

// auditCore — проверка основных полей заказа.
func (a *OrderAuditor) auditCore(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if order.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidOrder)
	}
	if order.Number == "" {
		return fmt.Errorf("%w: number обязателен", ErrInvalidOrder)
	}
	if !order.Status.IsValid() {
		return fmt.Errorf("%w: status %q неизвестен", ErrInvalidOrder, string(order.Status))
	}
	if order.KitchenID == "" {
		return fmt.Errorf("%w: kitchen_id обязателен", ErrInvalidOrder)
	}
	if order.CreatedAt.IsZero() || order.CreatedAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: created_at некорректен", ErrInvalidOrder)
	}
	if order.Total < 0 {
		return fmt.Errorf("%w: total должен быть неотрицательным", ErrInvalidOrder)
	}
	return nil
}

// Проверка позиций заказа
func (a *OrderAuditor) auditItems(order *domain.Order) error {
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым", ErrInvalidOrder)
	}

	for i := range order.Items {
		item := &order.Items[i]
		idx := strconv.Itoa(i)

		if item.Name == "" {
			return fmt.Errorf("%w: items[%s].name обязателен", ErrInvalidOrder, idx)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%s].quantity должен быть положительным", ErrInvalidOrder, idx)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: items[%s].price должен быть неотрицательным", ErrInvalidOrder, idx)
		}
	}
	return nil
}
