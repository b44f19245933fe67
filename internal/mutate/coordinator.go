// Пакет mutate — координатор мутаций статуса: локальная проверка перехода,
// не более одной мутации на заказ одновременно, синхронная инвалидация
// кэша после успеха.
package mutate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/invalidate"
	"github.com/Akimtsev/ops_console/internal/policy"
	"github.com/Akimtsev/ops_console/internal/ports"
	"github.com/Akimtsev/ops_console/pkg/metrics"
	"github.com/google/uuid"
)

// ticket — признак мутации в полёте; не более одного на заказ.
// Временем жизни билета связано UI-состояние «обновляется».
type ticket struct {
	id       string
	issuedAt time.Time
}

// Coordinator — выполняет переходы статусов через шлюз бэкенда.
// Локальный реестр статусов — последнее подтверждённое сервером значение;
// он пополняется из чтений (Track) и событий (ApplyConfirmed).
type Coordinator struct {
	gateway ports.OrderGateway
	inv     ports.Invalidator
	log     ports.Logger

	mu       sync.Mutex
	pending  map[string]ticket
	statuses map[string]domain.Status
}

func NewCoordinator(gateway ports.OrderGateway, inv ports.Invalidator, log ports.Logger) *Coordinator {
	return &Coordinator{
		gateway:  gateway,
		inv:      inv,
		log:      log,
		pending:  make(map[string]ticket),
		statuses: make(map[string]domain.Status),
	}
}

// Track — запомнить статус, увиденный при чтении. Вызывается слоем чтений,
// чтобы координатору было от чего валидировать переход без лишней сети.
func (c *Coordinator) Track(order *domain.Order) {
	if order == nil || order.ID == "" {
		return
	}
	c.mu.Lock()
	c.statuses[order.ID] = order.Status
	c.mu.Unlock()
}

// ApplyConfirmed — применить подтверждённый извне статус (событие бэкенда).
func (c *Coordinator) ApplyConfirmed(orderID string, status domain.Status) {
	c.mu.Lock()
	c.statuses[orderID] = status
	c.mu.Unlock()
}

// Pending — идёт ли сейчас мутация по заказу (для UI «обновляется»).
func (c *Coordinator) Pending(orderID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[orderID]
	return ok
}

// RequestTransition — запрос перехода:
//  1. текущий статус из локального реестра (при отсутствии — одно чтение у шлюза);
//  2. мутация уже в полёте -> ErrMutationInFlight, без сети;
//  3. переход не разрешён таблицей -> ErrInvalidTransition, без сети;
//  4. иначе билет, запись у шлюза, применяем подтверждённый сервером статус,
//     синхронно инвалидируем семейство "order", отпускаем билет.
//
// При отказе билет отпускается, локальный статус не меняется, ошибка сервера
// доносится как есть. Автоповторов нет.
func (c *Coordinator) RequestTransition(ctx context.Context, orderID string, target domain.Status, role domain.Role, notes string) (*domain.Order, error) {
	current, err := c.currentStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := c.claim(orderID, current, target, role); err != nil {
		return nil, err
	}
	defer c.release(orderID)

	order, err := c.gateway.UpdateStatus(ctx, orderID, target, notes)
	if err != nil {
		metrics.MutationOps.WithLabelValues("failed").Inc()
		c.log.Warnf(ctx, "status mutation failed order=%s target=%s: %v", orderID, target, err)
		return nil, err
	}

	c.applyResult(ctx, orderID, order)
	metrics.MutationOps.WithLabelValues("applied").Inc()
	c.log.Infof(ctx, "status mutation applied order=%s status=%s", orderID, order.Status)
	return order, nil
}

// Cancel — отмена заказа. Отдельный эндпоинт бэкенда, но та же дисциплина:
// билет на заказ, проверка полномочий до сети, синхронная инвалидация.
// Отменять может только админ и только нетерминальный заказ.
func (c *Coordinator) Cancel(ctx context.Context, orderID, reason string, issueRefund, restoreVouchers bool, role domain.Role) (*domain.Order, *domain.CancelSummary, error) {
	current, err := c.currentStatus(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if role != domain.RoleAdmin {
		metrics.MutationOps.WithLabelValues("invalid").Inc()
		return nil, nil, fmt.Errorf("%w: role %s cannot cancel orders", domain.ErrInvalidTransition, role)
	}
	if policy.IsTerminal(current) {
		metrics.MutationOps.WithLabelValues("invalid").Inc()
		return nil, nil, fmt.Errorf("%w: order is already %s", domain.ErrInvalidTransition, current)
	}

	if err := c.issueTicket(orderID); err != nil {
		return nil, nil, err
	}
	defer c.release(orderID)

	order, summary, err := c.gateway.CancelOrder(ctx, orderID, reason, issueRefund, restoreVouchers)
	if err != nil {
		metrics.MutationOps.WithLabelValues("failed").Inc()
		return nil, nil, err
	}

	c.applyResult(ctx, orderID, order)
	metrics.MutationOps.WithLabelValues("applied").Inc()
	return order, summary, nil
}

// claim — локальные проверки и выдача билета одним захватом мьютекса:
// сначала занятость, затем таблица переходов. Ни одна из веток отказа
// не доходит до сети.
func (c *Coordinator) claim(orderID string, current, target domain.Status, role domain.Role) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.pending[orderID]; busy {
		metrics.MutationOps.WithLabelValues("busy").Inc()
		return fmt.Errorf("%w: order %s", domain.ErrMutationInFlight, orderID)
	}

	allowed := policy.NextAllowed(current, role)
	if !contains(allowed, target) {
		metrics.MutationOps.WithLabelValues("invalid").Inc()
		return fmt.Errorf("%w: %s -> %s for role %s (allowed: %v)",
			domain.ErrInvalidTransition, current, target, role, allowed)
	}

	c.pending[orderID] = ticket{id: uuid.New().String(), issuedAt: time.Now()}
	return nil
}

func (c *Coordinator) issueTicket(orderID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.pending[orderID]; busy {
		metrics.MutationOps.WithLabelValues("busy").Inc()
		return fmt.Errorf("%w: order %s", domain.ErrMutationInFlight, orderID)
	}
	c.pending[orderID] = ticket{id: uuid.New().String(), issuedAt: time.Now()}
	return nil
}

func (c *Coordinator) release(orderID string) {
	c.mu.Lock()
	delete(c.pending, orderID)
	c.mu.Unlock()
}

// applyResult — доверяем серверу: в реестр попадает подтверждённый статус,
// затем синхронная чистка кэша, до возврата управления вызывающему.
func (c *Coordinator) applyResult(ctx context.Context, orderID string, order *domain.Order) {
	if order != nil {
		c.mu.Lock()
		c.statuses[orderID] = order.Status
		c.mu.Unlock()
	}
	c.inv.Invalidate(ctx, invalidate.FamilyOrder, orderID)
}

// currentStatus — статус из локального реестра; при первом обращении
// к незнакомому заказу — одно чтение у шлюза.
func (c *Coordinator) currentStatus(ctx context.Context, orderID string) (domain.Status, error) {
	c.mu.Lock()
	current, ok := c.statuses[orderID]
	c.mu.Unlock()
	if ok {
		return current, nil
	}

	order, err := c.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", fmt.Errorf("%w: order %s not found", domain.ErrUpstream, orderID)
	}
	c.Track(order)
	return order.Status, nil
}

func contains(set []domain.Status, s domain.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
