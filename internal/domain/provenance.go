package domain

import "strings"

// Provenance — происхождение заказа: создан оператором, автозаказом
// или принят автоматически. Чисто производная классификация для экранов;
// на легальность переходов она не влияет никогда — internal/policy
// про неё не знает.
type Provenance string

const (
	ProvenanceManual       Provenance = "MANUAL"
	ProvenanceAutoOrder    Provenance = "AUTO_ORDER"
	ProvenanceAutoAccepted Provenance = "AUTO_ACCEPTED"
)

// ClassifyProvenance — эвристика по заметкам и способу оплаты.
// Бэкенд явного признака не отдаёт, поэтому наследуем правила консоли:
// автозаказы помечаются маркером в notes, автоприём — подпиской без заметок.
func ClassifyProvenance(o *Order) Provenance {
	if o == nil {
		return ProvenanceManual
	}
	notes := strings.ToLower(o.Notes)
	switch {
	case strings.Contains(notes, "auto-order"):
		return ProvenanceAutoOrder
	case strings.Contains(notes, "auto-accepted"):
		return ProvenanceAutoAccepted
	case o.PaymentMethod == "SUBSCRIPTION" && o.Notes == "":
		return ProvenanceAutoAccepted
	default:
		return ProvenanceManual
	}
}
