package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/Akimtsev/ops_console/internal/domain"
)

func orderID(o domain.Order) string { return o.ID }

func pageOf(page, pages int, ids ...string) domain.Page[domain.Order] {
	items := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		items = append(items, domain.Order{ID: id, Status: domain.StatusPlaced})
	}
	return domain.Page[domain.Order]{Items: items, Page: page, Pages: pages, Total: len(ids)}
}

func TestPager_AccumulatesInOrder(t *testing.T) {
	pages := map[int]domain.Page[domain.Order]{
		1: pageOf(1, 2, "a", "b"),
		2: pageOf(2, 2, "c"),
	}
	calls := 0
	p := NewPager(func(_ context.Context, page int) (domain.Page[domain.Order], error) {
		calls++
		return pages[page], nil
	}, orderID)

	if err := p.LoadMore(context.Background()); err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if !p.HasMore() {
		t.Fatalf("after page 1 of 2 hasMore must be true")
	}
	if err := p.LoadMore(context.Background()); err != nil {
		t.Fatalf("page 2: %v", err)
	}

	items := p.Items()
	if len(items) != 3 || items[0].ID != "a" || items[1].ID != "b" || items[2].ID != "c" {
		t.Fatalf("wrong accumulation order: %+v", items)
	}
	if p.HasMore() {
		t.Fatalf("after last page hasMore must be false")
	}

	// hasMore=false: дальнейшие вызовы — no-op без загрузчика
	if err := p.LoadMore(context.Background()); err != nil {
		t.Fatalf("no-op LoadMore: %v", err)
	}
	if calls != 2 {
		t.Fatalf("loader must not be invoked past the last page, calls=%d", calls)
	}
	if len(p.Items()) != 3 {
		t.Fatalf("items must be unchanged by the no-op")
	}
}

func TestPager_DeduplicatesAcrossPages(t *testing.T) {
	pages := map[int]domain.Page[domain.Order]{
		1: pageOf(1, 2, "a", "b"),
		// нестабильная сортировка бэкенда повторила "b" на второй странице
		2: pageOf(2, 2, "b", "c"),
	}
	p := NewPager(func(_ context.Context, page int) (domain.Page[domain.Order], error) {
		return pages[page], nil
	}, orderID)

	_ = p.LoadMore(context.Background())
	_ = p.LoadMore(context.Background())

	items := p.Items()
	if len(items) != 3 {
		t.Fatalf("duplicate identity must not create a duplicate entry: %+v", items)
	}
}

func TestPager_ResetStartsOver(t *testing.T) {
	calls := 0
	p := NewPager(func(_ context.Context, page int) (domain.Page[domain.Order], error) {
		calls++
		if page != 1 {
			t.Fatalf("after Reset cursor must be 1, got %d", page)
		}
		return pageOf(1, 1, "x"), nil
	}, orderID)

	_ = p.LoadMore(context.Background())
	p.Reset()

	if len(p.Items()) != 0 || !p.HasMore() {
		t.Fatalf("reset must clear items and restore hasMore")
	}
	_ = p.LoadMore(context.Background())
	if got := p.Items(); len(got) != 1 || got[0].ID != "x" {
		t.Fatalf("reload after reset failed: %+v", got)
	}
	if calls != 2 {
		t.Fatalf("want 2 loads, got %d", calls)
	}
}

func TestPager_ResetDuringFirstPageLoadDiscardsIt(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	p := NewPager(func(context.Context, int) (domain.Page[domain.Order], error) {
		calls++
		if calls == 1 {
			close(started)
			<-release // pull-to-refresh случается, пока первая страница в полёте
			return pageOf(1, 2, "stale"), nil
		}
		return pageOf(1, 1, "fresh"), nil
	}, orderID)

	done := make(chan error, 1)
	go func() { done <- p.LoadMore(context.Background()) }()

	<-started
	p.Reset() // курсор снова 1 — совпадает со страницей в полёте
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("late load: %v", err)
	}
	if got := p.Items(); len(got) != 0 {
		t.Fatalf("page from before reset must be dropped: %+v", got)
	}

	// следующая догрузка начинает накопление заново
	if err := p.LoadMore(context.Background()); err != nil {
		t.Fatalf("reload after reset: %v", err)
	}
	if got := p.Items(); len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("reload after reset failed: %+v", got)
	}
}

func TestPager_LoadErrorKeepsState(t *testing.T) {
	fail := errors.New("page fetch failed")
	p := NewPager(func(_ context.Context, page int) (domain.Page[domain.Order], error) {
		if page == 2 {
			return domain.Page[domain.Order]{}, fail
		}
		return pageOf(1, 2, "a"), nil
	}, orderID)

	_ = p.LoadMore(context.Background())
	if err := p.LoadMore(context.Background()); !errors.Is(err, fail) {
		t.Fatalf("want loader error, got %v", err)
	}
	// состояние не испорчено, повтор остаётся возможным
	if len(p.Items()) != 1 || !p.HasMore() || p.Loading() {
		t.Fatalf("failed load must leave items/hasMore intact")
	}
}

func TestPager_CancelledContextDiscardsPage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPager(func(context.Context, int) (domain.Page[domain.Order], error) {
		cancel()
		return pageOf(1, 2, "late"), nil
	}, orderID)

	if err := p.LoadMore(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if len(p.Items()) != 0 {
		t.Fatalf("late page must not be applied")
	}
}
