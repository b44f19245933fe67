package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/invalidate"
	"github.com/Akimtsev/ops_console/internal/mutate"
	"github.com/Akimtsev/ops_console/internal/ports"
)

// EventApplier — применение событий смены статуса, пришедших из Kafka.
// Событие обновляет локальный реестр статусов и вычищает затронутые
// семейства кэша: следующее чтение уйдёт за свежими данными.
type EventApplier struct {
	mut       *mutate.Coordinator
	inv       ports.Invalidator
	log       ports.Logger
	validator ports.EventValidator
}

// NewEventApplier — DI-конструктор.
func NewEventApplier(
	mut *mutate.Coordinator,
	inv ports.Invalidator,
	log ports.Logger,
	validator ports.EventValidator,
) *EventApplier {
	return &EventApplier{
		mut:       mut,
		inv:       inv,
		log:       log,
		validator: validator,
	}
}

// ApplyFromMessage — применить событие, пришедшее из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields) —> отлавливаем незадокументированные поля;
//  2. доменная валидация (вернёт validate.ErrInvalidEvent при проблемах);
//  3. обновление локального реестра статусов;
//  4. синхронная инвалидация семейства order.
func (a *EventApplier) ApplyFromMessage(ctx context.Context, raw []byte) error {
	// Строгое декодирование: запрещаем неизвестные поля.
	var event domain.StatusEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&event); err != nil {
		a.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		a.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("invalid json: trailing data")
	}

	if err := a.validator.Validate(ctx, &event); err != nil {
		a.log.Warnf(ctx, "validation failed order_id=%s err=%v", event.OrderID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	a.mut.ApplyConfirmed(event.OrderID, event.NewStatus)
	a.inv.Invalidate(ctx, invalidate.FamilyOrder, event.OrderID)

	a.log.Infof(ctx, "status event applied order_id=%s %s->%s by=%s",
		event.OrderID, event.OldStatus, event.NewStatus, event.ChangedBy)
	return nil
}
