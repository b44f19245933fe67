package fetch

import (
	"context"
	"sync"

	"github.com/Akimtsev/ops_console/internal/domain"
)

// PageLoader — загрузка одной страницы списочного ресурса.
type PageLoader[T any] func(ctx context.Context, page int) (domain.Page[T], error)

// Identity — ключ идентичности элемента для дедупликации между страницами.
type Identity[T any] func(T) string

// Pager — аккумулятор страниц: складывает их в одну упорядоченную
// последовательность без дублей и помнит, есть ли ещё страницы.
// Новая страница всегда дописывается в хвост; пересортировки нет.
type Pager[T any] struct {
	load PageLoader[T]
	id   Identity[T]

	mu      sync.Mutex
	items   []T
	seen    map[string]struct{}
	next    int
	gen     int // поколение накопления, растёт на каждом Reset
	hasMore bool
	loading bool
}

func NewPager[T any](load PageLoader[T], id Identity[T]) *Pager[T] {
	return &Pager[T]{
		load:    load,
		id:      id,
		seen:    make(map[string]struct{}),
		next:    1,
		hasMore: true,
	}
}

// LoadMore — догрузить следующую страницу. No-op, пока идёт загрузка или
// страниц больше нет — защита от дублей при быстром скролле.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	page := p.next
	gen := p.gen
	p.mu.Unlock()

	res, err := p.load(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false

	if err != nil {
		return err
	}
	// экран, запросивший догрузку, уже умер — результат не применяем
	if ctx.Err() != nil {
		return ctx.Err()
	}
	// поздний ответ после Reset относится к прошлой сессии накопления;
	// сравнение по странице здесь не годится — Reset возвращает курсор
	// на первую страницу, и летящая первая страница совпала бы с ним
	if p.gen != gen {
		return nil
	}

	for _, item := range res.Items {
		key := p.id(item)
		// бэкенд с нестабильной сортировкой может повторить элемент на стыке страниц
		if _, dup := p.seen[key]; dup {
			continue
		}
		p.seen[key] = struct{}{}
		p.items = append(p.items, item)
	}

	p.hasMore = res.Page < res.Pages
	p.next = page + 1
	return nil
}

// Reset — очистить накопление и вернуть курсор на первую страницу.
// Вызывается при смене фильтров и pull-to-refresh; первая догрузка — за вызывающим.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = nil
	p.seen = make(map[string]struct{})
	p.next = 1
	p.gen++
	p.hasMore = true
}

// Items — копия накопленной последовательности.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

func (p *Pager[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}
