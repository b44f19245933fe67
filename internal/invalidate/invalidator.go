// Пакет invalidate — синхронная инвалидация кэша по завершённой мутации.
package invalidate

import (
	"context"

	"github.com/Akimtsev/ops_console/internal/cachekey"
	"github.com/Akimtsev/ops_console/internal/ports"
	"github.com/Akimtsev/ops_console/pkg/metrics"
)

var _ ports.Invalidator = (*Invalidator)(nil)

// Семейства ресурсов, известные инвалидатору.
const (
	FamilyOrder   = "order"
	FamilyKitchen = "kitchen"
)

// Статическая таблица: семейство -> общие префиксы, которые протухают
// при любой мутации этого семейства. Статистика производна от состояния
// заказов, поэтому живёт в семействе "order".
var familyPrefixes = map[string][]string{
	FamilyOrder:   {cachekey.PrefixOrdersList, cachekey.PrefixStats},
	FamilyKitchen: {cachekey.PrefixKitchens},
}

// Invalidator — применяет таблицу семейств к RequestCache. Работа строго
// синхронна: вызвавший координатор не возвращает управление, пока чистка
// не завершена, поэтому следующее чтение не увидит устаревший снимок.
type Invalidator struct {
	cache ports.RequestCache
	log   ports.Logger
}

func New(cache ports.RequestCache, log ports.Logger) *Invalidator {
	return &Invalidator{cache: cache, log: log}
}

// Invalidate — вычистить семейство; непустой id дополнительно чистит
// детальные записи этого ресурса. Неизвестное семейство — no-op с warn.
func (i *Invalidator) Invalidate(ctx context.Context, family, id string) {
	prefixes, ok := familyPrefixes[family]
	if !ok {
		i.log.Warnf(ctx, "invalidate: unknown resource family %q", family)
		return
	}

	removed := 0
	for _, p := range prefixes {
		removed += i.cache.DeleteByPrefix(ctx, p)
	}
	if id != "" && family == FamilyOrder {
		removed += i.cache.DeleteByPrefix(ctx, cachekey.OrderDetail(id))
	}

	metrics.Invalidations.WithLabelValues(family).Inc()
	i.log.Infof(ctx, "cache invalidated family=%s id=%s removed=%d", family, id, removed)
}
