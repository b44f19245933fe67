package mutate_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/mutate"
	"github.com/Akimtsev/ops_console/internal/ports/mocks"
	"github.com/golang/mock/gomock"
)

const orderID = "o-1"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newCoordinator(t *testing.T) (*mutate.Coordinator, *mocks.MockOrderGateway, *mocks.MockInvalidator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockOrderGateway(ctrl)
	inv := mocks.NewMockInvalidator(ctrl)
	return mutate.NewCoordinator(gw, inv, noopLogger{}), gw, inv
}

func TestRequestTransition_KitchenCannotSkipToReady(t *testing.T) {
	c, gw, _ := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusPlaced})

	// локальный отказ — шлюз не должен быть тронут
	gw.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := c.RequestTransition(context.Background(), orderID, domain.StatusReady, domain.RoleKitchenStaff, "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}

func TestRequestTransition_AdminReadyToPickedUp(t *testing.T) {
	c, gw, inv := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusReady})

	confirmed := &domain.Order{ID: orderID, Status: domain.StatusPickedUp}
	gomock.InOrder(
		gw.EXPECT().UpdateStatus(gomock.Any(), orderID, domain.StatusPickedUp, "").Return(confirmed, nil),
		inv.EXPECT().Invalidate(gomock.Any(), "order", orderID),
	)

	got, err := c.RequestTransition(context.Background(), orderID, domain.StatusPickedUp, domain.RoleAdmin, "")
	if err != nil || got.Status != domain.StatusPickedUp {
		t.Fatalf("unexpected: order=%+v err=%v", got, err)
	}
	if c.Pending(orderID) {
		t.Fatalf("ticket must be released after success")
	}
}

func TestRequestTransition_ServerConfirmedStatusWins(t *testing.T) {
	c, gw, inv := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusPlaced})

	// сервер подтвердил не то, что просили — верим серверу
	confirmed := &domain.Order{ID: orderID, Status: domain.StatusRejected}
	gw.EXPECT().UpdateStatus(gomock.Any(), orderID, domain.StatusAccepted, "").Return(confirmed, nil)
	inv.EXPECT().Invalidate(gomock.Any(), "order", orderID)

	got, err := c.RequestTransition(context.Background(), orderID, domain.StatusAccepted, domain.RoleAdmin, "")
	if err != nil || got.Status != domain.StatusRejected {
		t.Fatalf("server-confirmed status must win, got %+v err=%v", got, err)
	}

	// следующий переход валидируется уже от подтверждённого статуса
	gw.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	_, err = c.RequestTransition(context.Background(), orderID, domain.StatusReady, domain.RoleAdmin, "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("REJECTED is terminal, want ErrInvalidTransition, got %v", err)
	}
}

func TestRequestTransition_SecondCallBusy(t *testing.T) {
	c, gw, inv := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusReady})

	entered := make(chan struct{})
	proceed := make(chan struct{})
	confirmed := &domain.Order{ID: orderID, Status: domain.StatusPickedUp}

	// ровно один вызов записи; он висит, пока не проверим второй запрос
	gw.EXPECT().UpdateStatus(gomock.Any(), orderID, domain.StatusPickedUp, "").
		DoAndReturn(func(context.Context, string, domain.Status, string) (*domain.Order, error) {
			close(entered)
			<-proceed
			return confirmed, nil
		}).Times(1)
	inv.EXPECT().Invalidate(gomock.Any(), "order", orderID)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = c.RequestTransition(context.Background(), orderID, domain.StatusPickedUp, domain.RoleAdmin, "")
	}()

	<-entered
	if !c.Pending(orderID) {
		t.Fatalf("ticket must be held while the write is in flight")
	}
	_, err := c.RequestTransition(context.Background(), orderID, domain.StatusPickedUp, domain.RoleAdmin, "")
	if !errors.Is(err, domain.ErrMutationInFlight) {
		t.Fatalf("second request must be Busy, got %v", err)
	}

	close(proceed)
	wg.Wait()
	if firstErr != nil {
		t.Fatalf("first request must succeed: %v", firstErr)
	}
}

func TestRequestTransition_GatewayFailureKeepsStatus(t *testing.T) {
	c, gw, inv := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusPlaced})

	gw.EXPECT().UpdateStatus(gomock.Any(), orderID, domain.StatusAccepted, "").
		Return(nil, domain.ErrNetwork)
	inv.EXPECT().Invalidate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := c.RequestTransition(context.Background(), orderID, domain.StatusAccepted, domain.RoleAdmin, "")
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("gateway error must surface, got %v", err)
	}
	if c.Pending(orderID) {
		t.Fatalf("ticket must be released after failure")
	}

	// статус не изменился: тот же переход снова считается легальным
	confirmed := &domain.Order{ID: orderID, Status: domain.StatusAccepted}
	gw.EXPECT().UpdateStatus(gomock.Any(), orderID, domain.StatusAccepted, "").Return(confirmed, nil)
	inv.EXPECT().Invalidate(gomock.Any(), "order", orderID)
	if _, err := c.RequestTransition(context.Background(), orderID, domain.StatusAccepted, domain.RoleAdmin, ""); err != nil {
		t.Fatalf("retry after failure must pass validation: %v", err)
	}
}

func TestRequestTransition_UnknownOrderFetchedOnce(t *testing.T) {
	c, gw, inv := newCoordinator(t)

	gomock.InOrder(
		gw.EXPECT().GetOrder(gomock.Any(), orderID).
			Return(&domain.Order{ID: orderID, Status: domain.StatusPlaced}, nil),
		gw.EXPECT().UpdateStatus(gomock.Any(), orderID, domain.StatusAccepted, "").
			Return(&domain.Order{ID: orderID, Status: domain.StatusAccepted}, nil),
		inv.EXPECT().Invalidate(gomock.Any(), "order", orderID),
	)

	if _, err := c.RequestTransition(context.Background(), orderID, domain.StatusAccepted, domain.RoleAdmin, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequestTransition_UnknownRoleRejected(t *testing.T) {
	c, gw, _ := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusPlaced})

	gw.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := c.RequestTransition(context.Background(), orderID, domain.StatusAccepted, domain.Role("COURIER"), "")
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("unknown role must fail safe, got %v", err)
	}
}

func TestCancel_AdminOnly(t *testing.T) {
	c, gw, _ := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusPlaced})

	gw.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, _, err := c.Cancel(context.Background(), orderID, "reason", true, true, domain.RoleKitchenStaff)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("kitchen staff must not cancel, got %v", err)
	}
}

func TestCancel_TerminalOrderRejected(t *testing.T) {
	c, gw, _ := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusDelivered})

	gw.EXPECT().CancelOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, _, err := c.Cancel(context.Background(), orderID, "late", true, false, domain.RoleAdmin)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("terminal order must not be cancellable, got %v", err)
	}
}

func TestCancel_Success(t *testing.T) {
	c, gw, inv := newCoordinator(t)
	c.Track(&domain.Order{ID: orderID, Status: domain.StatusAccepted})

	confirmed := &domain.Order{ID: orderID, Status: domain.StatusCancelled}
	summary := &domain.CancelSummary{RefundIssued: true, RefundAmount: 10}
	gomock.InOrder(
		gw.EXPECT().CancelOrder(gomock.Any(), orderID, "customer request", true, true).
			Return(confirmed, summary, nil),
		inv.EXPECT().Invalidate(gomock.Any(), "order", orderID),
	)

	order, got, err := c.Cancel(context.Background(), orderID, "customer request", true, true, domain.RoleAdmin)
	if err != nil || order.Status != domain.StatusCancelled || !got.RefundIssued {
		t.Fatalf("unexpected: order=%+v summary=%+v err=%v", order, got, err)
	}
}
