package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Akimtsev/ops_console/internal/cache/memory"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newCoordinator(window time.Duration) *Coordinator {
	return NewCoordinator(memory.NewRequestCache(), noopLogger{}, window)
}

func TestDo_CacheHitSkipsLoader(t *testing.T) {
	c := newCoordinator(time.Millisecond)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (string, error) {
		calls++
		return "v1", nil
	}

	got, err := Do(ctx, c, "k", time.Minute, loader)
	if err != nil || got != "v1" {
		t.Fatalf("first call: got %q err=%v", got, err)
	}

	time.Sleep(5 * time.Millisecond) // выходим из окна гашения: должен сработать именно кэш
	got, err = Do(ctx, c, "k", time.Minute, loader)
	if err != nil || got != "v1" {
		t.Fatalf("second call: got %q err=%v", got, err)
	}
	if calls != 1 {
		t.Fatalf("loader must be called once, got %d", calls)
	}
}

func TestDo_TTLExpiryReloads(t *testing.T) {
	c := newCoordinator(time.Millisecond)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if _, err := Do(ctx, c, "k", 40*time.Millisecond, loader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(60 * time.Millisecond)
	got, err := Do(ctx, c, "k", 40*time.Millisecond, loader)
	if err != nil || got != 2 {
		t.Fatalf("expected reload after expiry, got %d err=%v", got, err)
	}
	if calls != 2 {
		t.Fatalf("loader must be called twice, got %d", calls)
	}
}

func TestDo_ThrottleDropsDuplicate(t *testing.T) {
	c := newCoordinator(500 * time.Millisecond)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (string, error) {
		calls++
		return "fresh", nil
	}

	// ttl=0: кэш не участвует, работает только окно гашения
	if _, err := Do(ctx, c, "k", 0, loader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	got, err := Do(ctx, c, "k", 0, loader)
	if err != nil {
		t.Fatalf("dropped call must return last known value, err=%v", err)
	}
	if got != "fresh" {
		t.Fatalf("want last known value, got %q", got)
	}
	if calls != 1 {
		t.Fatalf("loader must be called exactly once, got %d", calls)
	}
}

func TestDo_ThrottleWithoutLastKnown(t *testing.T) {
	c := newCoordinator(time.Minute)
	ctx := context.Background()

	failing := func(context.Context) (string, error) { return "", errors.New("backend down") }
	if _, err := Do(ctx, c, "k", 0, failing); err == nil {
		t.Fatalf("expected loader error")
	}

	// повтор в окне: известного значения нет — ErrThrottled
	_, err := Do(ctx, c, "k", 0, failing)
	if !errors.Is(err, ErrThrottled) {
		t.Fatalf("want ErrThrottled, got %v", err)
	}
}

func TestRefresh_BypassesFreshCache(t *testing.T) {
	c := newCoordinator(time.Minute)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if _, err := Do(ctx, c, "k", time.Minute, loader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := Refresh(ctx, c, "k", time.Minute, loader)
	if err != nil || got != 2 {
		t.Fatalf("refresh must reload, got %d err=%v", got, err)
	}

	// Refresh перезаписал кэш: обычный Do видит новое значение без загрузки
	got, err = Do(ctx, c, "k", time.Minute, loader)
	if err != nil || got != 2 || calls != 2 {
		t.Fatalf("cache must hold refreshed value, got %d calls=%d err=%v", got, calls, err)
	}
}

func TestDo_CancelledContextDiscardsResult(t *testing.T) {
	c := newCoordinator(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	loader := func(context.Context) (string, error) {
		cancel() // инициатор умирает, пока ответ в полёте
		return "late", nil
	}

	_, err := Do(ctx, c, "k", time.Minute, loader)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}

	// поздний результат не должен был попасть в кэш
	time.Sleep(5 * time.Millisecond)
	calls := 0
	fresh := func(context.Context) (string, error) {
		calls++
		return "new", nil
	}
	got, err := Do(context.Background(), c, "k", time.Minute, fresh)
	if err != nil || got != "new" || calls != 1 {
		t.Fatalf("discarded result leaked into cache: got %q calls=%d err=%v", got, calls, err)
	}
}

func TestReset_ClearsLastKnownAndThrottle(t *testing.T) {
	c := newCoordinator(time.Minute)
	ctx := context.Background()

	calls := 0
	loader := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "before-logout", nil
		}
		return "after-logout", nil
	}

	// ttl=0: кэш не участвует, значение живёт только в lastKnown
	if _, err := Do(ctx, c, "k", 0, loader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Reset()

	// Повтор внутри окна: после сброса старое значение всплыть не должно,
	// идём за свежим.
	got, err := Do(ctx, c, "k", 0, loader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "after-logout" {
		t.Fatalf("stale value survived reset: %q", got)
	}
	if calls != 2 {
		t.Fatalf("loader must reload after reset, calls=%d", calls)
	}
}

func TestDo_LoaderErrorNotCached(t *testing.T) {
	c := newCoordinator(time.Millisecond)
	ctx := context.Background()

	backendErr := errors.New("HTTP 500")
	if _, err := Do(ctx, c, "k", time.Minute, func(context.Context) (string, error) {
		return "", backendErr
	}); !errors.Is(err, backendErr) {
		t.Fatalf("loader error must surface as is, got %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	got, err := Do(ctx, c, "k", time.Minute, func(context.Context) (string, error) {
		return "recovered", nil
	})
	if err != nil || got != "recovered" {
		t.Fatalf("error must not be cached, got %q err=%v", got, err)
	}
}
