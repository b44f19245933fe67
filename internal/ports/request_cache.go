package ports

import (
	"context"
	"time"
)

// RequestCache — кэш результатов чтений; один общий экземпляр на сессию.
// Писать в него могут только координатор чтений и инвалидатор, остальные
// компоненты читают. Просроченная запись на Get неотличима от отсутствующей:
// оба состояния означают «иди за данными».
type RequestCache interface {
	// Get — значение по ключу; (nil, false) при отсутствии или истёкшем TTL.
	Get(ctx context.Context, key string) (any, bool)

	// Set — записать значение с TTL записи; ttl <= 0 — запись не кэшируется.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete — удалить один ключ.
	Delete(ctx context.Context, key string)

	// DeleteByPrefix — удалить все ключи с данным префиксом; возвращает число удалённых.
	DeleteByPrefix(ctx context.Context, prefix string) int

	// Clear — полная очистка; вызывается при завершении сессии.
	Clear(ctx context.Context)
}
