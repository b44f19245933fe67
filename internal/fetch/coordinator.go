// Пакет fetch — координатор чтений: сверка с кэшем, гашение дублей,
// запись результата обратно в кэш. Все операции принимают контекст;
// результат, пришедший после отмены контекста, отбрасывается,
// а не применяется к уже неактуальному состоянию.
package fetch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Akimtsev/ops_console/internal/ports"
	"github.com/Akimtsev/ops_console/pkg/metrics"
)

// ErrThrottled — вызов по ключу попал в окно гашения, а отдать нечего:
// последнего известного значения ещё нет. Вызывающий трактует это как no-op.
var ErrThrottled = errors.New("duplicate fetch dropped")

// DefaultThrottleWindow — минимальный интервал между загрузками одного ключа.
// Защита от шторма перерисовок, порождающего дубли сетевых вызовов.
const DefaultThrottleWindow = 500 * time.Millisecond

// Loader — одна операция чтения у бэкенда.
type Loader[T any] func(ctx context.Context) (T, error)

// Coordinator — состояние гашения дублей и последних известных значений.
// Сам по себе не типизирован; типобезопасность дают обобщённые Do/Refresh.
type Coordinator struct {
	cache  ports.RequestCache
	log    ports.Logger
	window time.Duration

	mu          sync.Mutex
	lastAttempt map[string]time.Time
	lastKnown   map[string]any
}

func NewCoordinator(cache ports.RequestCache, log ports.Logger, window time.Duration) *Coordinator {
	if window <= 0 {
		window = DefaultThrottleWindow
	}
	return &Coordinator{
		cache:       cache,
		log:         log,
		window:      window,
		lastAttempt: make(map[string]time.Time),
		lastKnown:   make(map[string]any),
	}
}

// Do — чтение через кэш:
//  1. при ttl > 0 свежая запись кэша возвращается без вызова loader;
//  2. повторный вызов по тому же ключу внутри окна гашения не ходит в сеть —
//     возвращает последнее известное значение либо ErrThrottled;
//  3. иначе вызывается loader; успех при ttl > 0 пополняет кэш.
func Do[T any](ctx context.Context, c *Coordinator, key string, ttl time.Duration, loader Loader[T]) (T, error) {
	var zero T

	if ttl > 0 {
		if cached, ok := c.cache.Get(ctx, key); ok {
			if v, ok := cached.(T); ok {
				metrics.FetchOps.WithLabelValues("cache").Inc()
				return v, nil
			}
			// тип под ключом сменился — считаем промахом и перечитываем
			c.log.Warnf(ctx, "cache entry type mismatch key=%s", key)
		}
	}

	if last, ok := c.claim(key); !ok {
		metrics.FetchOps.WithLabelValues("throttled").Inc()
		if v, ok := last.(T); ok {
			return v, nil
		}
		return zero, ErrThrottled
	}

	return load(ctx, c, key, ttl, loader)
}

// Refresh — принудительная перезагрузка: минуя свежесть кэша и окно гашения.
// Используется pull-to-refresh и явным «повторить»; успех всегда
// перезаписывает кэш.
func Refresh[T any](ctx context.Context, c *Coordinator, key string, ttl time.Duration, loader Loader[T]) (T, error) {
	c.mu.Lock()
	c.lastAttempt[key] = time.Now()
	c.mu.Unlock()

	return load(ctx, c, key, ttl, loader)
}

func load[T any](ctx context.Context, c *Coordinator, key string, ttl time.Duration, loader Loader[T]) (T, error) {
	var zero T

	value, err := loader(ctx)
	if err != nil {
		metrics.FetchOps.WithLabelValues("error").Inc()
		return zero, err
	}

	// Инициатор умер, пока мы ходили в сеть: результат отбрасываем.
	if ctx.Err() != nil {
		return zero, ctx.Err()
	}

	c.mu.Lock()
	c.lastKnown[key] = value
	c.mu.Unlock()

	if ttl > 0 {
		if setErr := c.cache.Set(ctx, key, value, ttl); setErr != nil {
			c.log.Warnf(ctx, "cache.Set failed key=%s err=%v", key, setErr)
		}
	}

	metrics.FetchOps.WithLabelValues("load").Inc()
	return value, nil
}

// Reset — сброс окон гашения и последних известных значений.
// Вызывается при завершении сессии: после выхода значение прежнего
// пользователя не должно всплыть из lastKnown внутри окна.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastAttempt = make(map[string]time.Time)
	c.lastKnown = make(map[string]any)
}

// claim — отметить попытку загрузки ключа. Возвращает (последнее известное
// значение, false), если ключ ещё в окне гашения.
func (c *Coordinator) claim(key string) (any, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if at, ok := c.lastAttempt[key]; ok && now.Sub(at) < c.window {
		return c.lastKnown[key], false
	}
	c.lastAttempt[key] = now
	return nil, true
}
