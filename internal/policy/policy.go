// Пакет policy — единственное место, где объявлен граф переходов статусов.
// Раньше таблицы дублировались по экранам и расходились; теперь все
// потребители (HTTP-слой, координатор мутаций, audit-CLI) ходят сюда.
package policy

import "github.com/Akimtsev/ops_console/internal/domain"

// Таблицы переходов по ролям. Пустой список = исходящих рёбер нет.
// SCHEDULED продвигает только внешний планировщик, человеку он недоступен.
var adminNext = map[domain.Status][]domain.Status{
	domain.StatusPlaced:         {domain.StatusAccepted, domain.StatusRejected},
	domain.StatusScheduled:      {},
	domain.StatusAccepted:       {domain.StatusReady},
	domain.StatusPreparing:      {},
	domain.StatusReady:          {domain.StatusPickedUp},
	domain.StatusPickedUp:       {domain.StatusOutForDelivery},
	domain.StatusOutForDelivery: {domain.StatusDelivered},
	domain.StatusRejected:       {},
	domain.StatusDelivered:      {},
	domain.StatusCancelled:      {},
	domain.StatusFailed:         {},
}

// Кухня не имеет полномочий дальше READY.
var kitchenNext = map[domain.Status][]domain.Status{
	domain.StatusPlaced:    {domain.StatusAccepted, domain.StatusRejected},
	domain.StatusAccepted:  {domain.StatusPreparing},
	domain.StatusPreparing: {domain.StatusReady},
	domain.StatusReady:     {},
	domain.StatusRejected:  {},
}

var terminal = map[domain.Status]bool{
	domain.StatusRejected:  true,
	domain.StatusCancelled: true,
	domain.StatusFailed:    true,
	domain.StatusDelivered: true,
}

// NextAllowed — допустимые целевые статусы для (текущий статус, роль).
// Неизвестная роль даёт пустое множество: отказ по умолчанию, а не допуск.
func NextAllowed(current domain.Status, role domain.Role) []domain.Status {
	var table map[domain.Status][]domain.Status
	switch role {
	case domain.RoleAdmin:
		table = adminNext
	case domain.RoleKitchenStaff:
		table = kitchenNext
	default:
		return nil
	}
	next, ok := table[current]
	if !ok || len(next) == 0 {
		return nil
	}
	// копия, чтобы вызывающий не мог испортить таблицу
	return append([]domain.Status(nil), next...)
}

// Allowed — разрешён ли конкретный переход.
func Allowed(current, target domain.Status, role domain.Role) bool {
	for _, s := range NextAllowed(current, role) {
		if s == target {
			return true
		}
	}
	return false
}

// IsTerminal — статус без исходящих рёбер для любой роли.
func IsTerminal(s domain.Status) bool { return terminal[s] }
