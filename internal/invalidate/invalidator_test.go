package invalidate_test

import (
	"context"
	"testing"
	"time"

	"github.com/Akimtsev/ops_console/internal/cache/memory"
	"github.com/Akimtsev/ops_console/internal/cachekey"
	"github.com/Akimtsev/ops_console/internal/invalidate"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestInvalidate_OrderFamily(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewRequestCache()
	inv := invalidate.New(cache, noopLogger{})

	_ = cache.Set(ctx, cachekey.OrdersList(1, 20, nil), "page1", time.Minute)
	_ = cache.Set(ctx, cachekey.OrderDetail("o-1"), "detail", time.Minute)
	_ = cache.Set(ctx, cachekey.OrderDetail("o-2"), "other detail", time.Minute)
	_ = cache.Set(ctx, cachekey.Stats(), "stats", time.Minute)
	_ = cache.Set(ctx, cachekey.Kitchens(1, 20), "kitchens", time.Minute)

	inv.Invalidate(ctx, invalidate.FamilyOrder, "o-1")

	if _, ok := cache.Get(ctx, cachekey.OrdersList(1, 20, nil)); ok {
		t.Fatalf("orders list must be purged")
	}
	if _, ok := cache.Get(ctx, cachekey.OrderDetail("o-1")); ok {
		t.Fatalf("mutated order detail must be purged")
	}
	if _, ok := cache.Get(ctx, cachekey.Stats()); ok {
		t.Fatalf("stats are derived from orders and must be purged")
	}
	// чужой детальный кэш и другое семейство не трогаем
	if _, ok := cache.Get(ctx, cachekey.OrderDetail("o-2")); !ok {
		t.Fatalf("unrelated order detail must survive")
	}
	if _, ok := cache.Get(ctx, cachekey.Kitchens(1, 20)); !ok {
		t.Fatalf("kitchen family must survive an order invalidation")
	}
}

func TestInvalidate_UnknownFamilyIsNoop(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewRequestCache()
	inv := invalidate.New(cache, noopLogger{})

	_ = cache.Set(ctx, cachekey.Stats(), "stats", time.Minute)
	inv.Invalidate(ctx, "driver", "d-1")

	if _, ok := cache.Get(ctx, cachekey.Stats()); !ok {
		t.Fatalf("unknown family must not purge anything")
	}
}
