package validate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/ports"
)

// Проверка, что EventValidator удовлетворяет интерфейсу EventValidator.
var _ ports.EventValidator = (*EventValidator)(nil)

// ErrInvalidEvent — базовая (sentinel error) ошибка валидации события.
var ErrInvalidEvent = errors.New("status event validation failed")

// EventValidator — структура для валидации события смены статуса.
type EventValidator struct{}

// NewEventValidator — конструктор EventValidator.
// Возвращает ErrInvalidEvent (с обёрнутой причиной) при любой проблеме.
func NewEventValidator() *EventValidator { return &EventValidator{} }

// Validate — проверяет корректность полей события.
func (v *EventValidator) Validate(_ context.Context, event *domain.StatusEvent) error {
	if event == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidEvent)
	}
	if event.OrderID == "" {
		return fmt.Errorf("%w: order_id обязателен", ErrInvalidEvent)
	}
	if !event.NewStatus.IsValid() {
		return fmt.Errorf("%w: new_status %q неизвестен", ErrInvalidEvent, string(event.NewStatus))
	}
	// old_status опционален, но если задан — должен быть известен
	if event.OldStatus != "" && !event.OldStatus.IsValid() {
		return fmt.Errorf("%w: old_status %q неизвестен", ErrInvalidEvent, string(event.OldStatus))
	}
	if event.OldStatus == event.NewStatus {
		return fmt.Errorf("%w: статус не изменился", ErrInvalidEvent)
	}
	if event.OccurredAt.IsZero() || event.OccurredAt.Before(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: occurred_at некорректен", ErrInvalidEvent)
	}
	return nil
}
