package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Akimtsev/ops_console/internal/ports"
	"github.com/Akimtsev/ops_console/pkg/metrics"
)

// Проверка, что RequestCache удовлетворяет порту.
var _ ports.RequestCache = (*RequestCache)(nil)

type entry struct {
	value     any
	writtenAt time.Time
	ttl       time.Duration
}

// RequestCache — TTL-кэш результатов чтений без фонового выселения.
// Просроченная запись не удаляется сама по себе: на Get она трактуется
// как промах, на следующем Set по этому ключу перезаписывается.
// Рост без верхней границы — принятый компромисс; размер виден в метрике.
type RequestCache struct {
	mu    sync.Mutex
	index map[string]*entry
}

func NewRequestCache() *RequestCache {
	return &RequestCache{index: make(map[string]*entry)}
}

// Get — значение по ключу; (nil, false) при отсутствии или истечении TTL.
// Вызывающий не может отличить «не кэшировалось» от «протухло» — и не должен.
func (c *RequestCache) Get(_ context.Context, key string) (any, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	if ent.isExpired(now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		return nil, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.value, true
}

// Set — записать значение с TTL записи; ttl <= 0 означает «не кэшировать».
func (c *RequestCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if key == "" || ttl <= 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.index[key] = &entry{value: value, writtenAt: time.Now(), ttl: ttl}
	metrics.CacheSize.Set(float64(len(c.index)))
	return nil
}

// Delete — удалить один ключ.
func (c *RequestCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[key]; ok {
		delete(c.index, key)
		metrics.CacheOps.WithLabelValues("purged").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

// DeleteByPrefix — вычистить все ключи семейства; возвращает число удалённых.
func (c *RequestCache) DeleteByPrefix(_ context.Context, prefix string) int {
	if prefix == "" {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.index {
		if strings.HasPrefix(key, prefix) {
			delete(c.index, key)
			removed++
		}
	}
	if removed > 0 {
		metrics.CacheOps.WithLabelValues("purged").Add(float64(removed))
		metrics.CacheSize.Set(float64(len(c.index)))
	}
	return removed
}

// Clear — полная очистка; вызывается при завершении сессии.
func (c *RequestCache) Clear(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index = make(map[string]*entry)
	metrics.CacheSize.Set(0)
}

// Len — текущее число записей (включая протухшие, они живут до перезаписи).
func (c *RequestCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

func (e *entry) isExpired(now time.Time) bool {
	if e.ttl <= 0 {
		return true
	}
	return now.Sub(e.writtenAt) >= e.ttl
}
