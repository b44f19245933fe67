package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Akimtsev/ops_console/internal/cachekey"
	"github.com/Akimtsev/ops_console/internal/domain"
	"github.com/Akimtsev/ops_console/internal/fetch"
	"github.com/Akimtsev/ops_console/internal/mutate"
	"github.com/Akimtsev/ops_console/internal/ports"
)

// TTLs — время жизни кэшированных чтений по типам данных.
// Нулевое значение означает «не кэшировать этот тип».
type TTLs struct {
	OrdersList  time.Duration
	OrderDetail time.Duration
	Stats       time.Duration
	Kitchens    time.Duration
}

// DefaultTTLs — значения по умолчанию: списки живут недолго (заказы
// меняются часто), справочник кухонь — заметно дольше.
func DefaultTTLs() TTLs {
	return TTLs{
		OrdersList:  30 * time.Second,
		OrderDetail: 30 * time.Second,
		Stats:       15 * time.Second,
		Kitchens:    5 * time.Minute,
	}
}

// ConsoleService — прикладная логика операционной консоли (без знаний о транспорте).
// Все чтения проходят через координатор чтений (кэш + троттлинг), мутации —
// через координатор мутаций (валидация перехода + билет + инвалидация).
type ConsoleService struct {
	gateway ports.OrderGateway   // прямой доступ к REST-бэкенду
	cache   ports.RequestCache   // прямой доступ к кэшу (только Clear)
	fetcher *fetch.Coordinator   // координатор чтений
	mut     *mutate.Coordinator  // координатор мутаций
	log     ports.Logger
	ttl     TTLs

	mu    sync.Mutex
	feeds map[string]*orderFeed // бесконечная лента, по одной на сессию
}

// orderFeed — накопитель страниц ленты заказов одной сессии.
// При смене набора фильтров накопленное сбрасывается.
type orderFeed struct {
	pager     *fetch.Pager[domain.Order]
	signature string
	limit     int
}

// NewConsoleService — DI-конструктор.
func NewConsoleService(
	gateway ports.OrderGateway,
	cache ports.RequestCache,
	fetcher *fetch.Coordinator,
	mut *mutate.Coordinator,
	log ports.Logger,
	ttl TTLs,
) *ConsoleService {
	return &ConsoleService{
		gateway: gateway,
		cache:   cache,
		fetcher: fetcher,
		mut:     mut,
		log:     log,
		ttl:     ttl,
		feeds:   make(map[string]*orderFeed),
	}
}

// Order — детальная карточка заказа; результат попадает в реестр статусов
// координатора мутаций, чтобы следующий переход валидировался локально.
func (s *ConsoleService) Order(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := fetch.Do(ctx, s.fetcher, cachekey.OrderDetail(orderID), s.ttl.OrderDetail,
		func(ctx context.Context) (*domain.Order, error) {
			return s.gateway.GetOrder(ctx, orderID)
		})
	if err != nil {
		return nil, err
	}
	if order != nil {
		order.Provenance = domain.ClassifyProvenance(order)
	}
	s.mut.Track(order)
	return order, nil
}

// Orders — страница списка заказов. force обходит кэш и троттлинг
// (явный «обновить» в интерфейсе).
func (s *ConsoleService) Orders(ctx context.Context, page, limit int, filters map[string]string, force bool) (domain.Page[domain.Order], error) {
	key := cachekey.OrdersList(page, limit, filters)
	loader := func(ctx context.Context) (domain.Page[domain.Order], error) {
		return s.gateway.ListOrders(ctx, page, limit, filters)
	}

	var (
		res domain.Page[domain.Order]
		err error
	)
	if force {
		res, err = fetch.Refresh(ctx, s.fetcher, key, s.ttl.OrdersList, loader)
	} else {
		res, err = fetch.Do(ctx, s.fetcher, key, s.ttl.OrdersList, loader)
	}
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	s.trackAll(res.Items)
	return res, nil
}

// OrderFeed — следующая порция бесконечной ленты сессии sessionID.
// Страницы накапливаются; смена фильтров сбрасывает накопленное и
// начинает ленту заново.
func (s *ConsoleService) OrderFeed(ctx context.Context, sessionID string, filters map[string]string) ([]domain.Order, bool, error) {
	feed := s.feedFor(sessionID, filters)
	if err := feed.pager.LoadMore(ctx); err != nil {
		return nil, feed.pager.HasMore(), err
	}
	items := feed.pager.Items()
	s.trackAll(items)
	return items, feed.pager.HasMore(), nil
}

// ResetOrderFeed — принудительный сброс ленты сессии (pull-to-refresh).
func (s *ConsoleService) ResetOrderFeed(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.feeds, sessionID)
}

// UpdateStatus — запрос перехода статуса от имени роли role.
func (s *ConsoleService) UpdateStatus(ctx context.Context, orderID string, target domain.Status, role domain.Role, notes string) (*domain.Order, error) {
	return s.mut.RequestTransition(ctx, orderID, target, role, notes)
}

// CancelOrder — отмена заказа (только ADMIN, проверяется координатором мутаций).
func (s *ConsoleService) CancelOrder(ctx context.Context, orderID, reason string, issueRefund, restoreVouchers bool, role domain.Role) (*domain.Order, *domain.CancelSummary, error) {
	return s.mut.Cancel(ctx, orderID, reason, issueRefund, restoreVouchers, role)
}

// Kitchens — страница справочника кухонь.
func (s *ConsoleService) Kitchens(ctx context.Context, page, limit int) (domain.Page[domain.Kitchen], error) {
	return fetch.Do(ctx, s.fetcher, cachekey.Kitchens(page, limit), s.ttl.Kitchens,
		func(ctx context.Context) (domain.Page[domain.Kitchen], error) {
			return s.gateway.ListKitchens(ctx, page, limit)
		})
}

// Stats — сводка показателей дашборда.
func (s *ConsoleService) Stats(ctx context.Context) (*domain.Stats, error) {
	return fetch.Do(ctx, s.fetcher, cachekey.Stats(), s.ttl.Stats,
		func(ctx context.Context) (*domain.Stats, error) {
			return s.gateway.Stats(ctx)
		})
}

// EndSession — завершение сессии оператора: кэш чтений вычищается целиком,
// ленты и состояние координатора сбрасываются. Данные не должны пережить logout.
func (s *ConsoleService) EndSession(ctx context.Context) {
	s.cache.Clear(ctx)
	s.fetcher.Reset()
	s.mu.Lock()
	s.feeds = make(map[string]*orderFeed)
	s.mu.Unlock()
	s.log.Infof(ctx, "session ended, request cache cleared")
}

// feedDefaultLimit — размер страницы ленты.
const feedDefaultLimit = 20

func (s *ConsoleService) feedFor(sessionID string, filters map[string]string) *orderFeed {
	sig := cachekey.FilterSignature(filters)

	s.mu.Lock()
	defer s.mu.Unlock()

	if feed, ok := s.feeds[sessionID]; ok && feed.signature == sig {
		return feed
	}

	// снимок фильтров: карта вызвавшего может измениться под ногами
	snapshot := make(map[string]string, len(filters))
	for k, v := range filters {
		snapshot[k] = v
	}

	feed := &orderFeed{signature: sig, limit: feedDefaultLimit}
	feed.pager = fetch.NewPager(
		func(ctx context.Context, page int) (domain.Page[domain.Order], error) {
			return s.gateway.ListOrders(ctx, page, feed.limit, snapshot)
		},
		func(o domain.Order) string { return o.ID },
	)
	s.feeds[sessionID] = feed
	return feed
}

func (s *ConsoleService) trackAll(orders []domain.Order) {
	for i := range orders {
		s.mut.Track(&orders[i])
	}
}
