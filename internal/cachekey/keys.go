// Пакет cachekey — соглашение об именовании ключей кэша.
// Ключи строятся только здесь, чтобы семейства префиксов для
// инвалидации и ключи чтений не могли разъехаться.
package cachekey

import (
	"fmt"
	"sort"
	"strings"
)

const (
	PrefixOrdersList  = "orders:list:"
	PrefixOrderDetail = "orders:detail:"
	PrefixStats       = "orders:stats"
	PrefixKitchens    = "kitchens:list:"
)

// OrdersList — ключ страницы списка заказов; фильтры входят в ключ
// в отсортированном виде, чтобы одинаковые наборы давали одинаковый ключ.
func OrdersList(page, limit int, filters map[string]string) string {
	return fmt.Sprintf("%sp%d:l%d:%s", PrefixOrdersList, page, limit, FilterSignature(filters))
}

func OrderDetail(orderID string) string {
	return PrefixOrderDetail + orderID
}

func Stats() string { return PrefixStats }

func Kitchens(page, limit int) string {
	return fmt.Sprintf("%sp%d:l%d", PrefixKitchens, page, limit)
}

// FilterSignature — детерминированная подпись набора фильтров.
func FilterSignature(filters map[string]string) string {
	if len(filters) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(filters[k])
	}
	return b.String()
}
