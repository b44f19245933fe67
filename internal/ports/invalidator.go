package ports

import "context"

// Invalidator — вычисляет по завершённой мутации семейства протухших
// ключей кэша и синхронно их вычищает. Обязан завершиться до возврата
// управления вызвавшему координатору.
type Invalidator interface {
	// Invalidate — вычистить семейство ресурса; id уточняет per-id записи
	// (детальный кэш конкретного заказа), пустой id чистит только общие префиксы.
	Invalidate(ctx context.Context, family, id string)
}
