package domain

import "errors"

// Ошибки слоя данных. Локальные (ErrInvalidTransition, ErrMutationInFlight)
// разрешаются до какого-либо сетевого вызова; остальные описывают исход
// обращения к бэкенду и доносятся до оператора без автоматических повторов.
var (
	// ErrInvalidTransition — запрошенный переход не разрешён таблицей для этой роли.
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrMutationInFlight — по заказу уже выполняется мутация; запрос отклонён без сети.
	ErrMutationInFlight = errors.New("order mutation already in flight")

	// ErrNetwork — транспортная ошибка: бэкенд недоступен.
	ErrNetwork = errors.New("upstream unreachable")

	// ErrUpstream — бэкенд ответил отказом (не-2xx или конверт с ошибкой);
	// сообщение сервера передаётся как есть.
	ErrUpstream = errors.New("upstream rejected request")

	// ErrBadEnvelope — ответ не совпал ни с одной известной формой конверта.
	ErrBadEnvelope = errors.New("unrecognized response envelope")
)
