package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"storefront/internal/bus"
	"storefront/internal/cart"
	"storefront/internal/interfaces"
	"storefront/internal/metrics"
	"storefront/internal/validation"
	"storefront/models"
)

var (
	// ErrEmptyCart — оформлять нечего.
	ErrEmptyCart = errors.New("корзина пуста")
	// ErrInFlight — по этой сессии уже идет отправка.
	ErrInFlight = errors.New("заказ уже отправляется")
	// ErrDelivery — уведомление не доставлено, состояние клиента не тронуто.
	ErrDelivery = errors.New("не удалось отправить заказ")
)

// Submitter превращает снимок корзины и контактную форму в одно исходящее
// уведомление и сверяет состояние клиента после ответа. Одна попытка,
// ретраев нет; повторная отправка формы безопасна, но дубликат сообщения —
// принятый риск.
type Submitter struct {
	notifier interfaces.Notifier
	prices   interfaces.PriceSource
	events   *bus.Bus

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewSubmitter(notifier interfaces.Notifier, prices interfaces.PriceSource, events *bus.Bus) *Submitter {
	return &Submitter{
		notifier: notifier,
		prices:   prices,
		events:   events,
		inFlight: make(map[string]bool),
	}
}

// Submit выполняет шаги оформления последовательно: валидация, сборка строк,
// сверка цен с каталогом, одна отправка. При успехе вызывает clearState
// (удаление cookie корзины и обеих областей сессии) и ровно один раз
// публикует cartUpdate с пустой корзиной. При любой ошибке clearState не
// вызывается — все три хранилища остаются нетронутыми.
func (s *Submitter) Submit(ctx context.Context, sessionID string, form models.ContactForm, cartMap models.CartMap, priceCache models.PriceCache, details models.DetailCache, clearState func()) (*models.OrderRequest, error) {
	if len(cartMap) == 0 {
		return nil, ErrEmptyCart
	}

	if !s.acquire(sessionID) {
		return nil, ErrInFlight
	}
	defer s.release(sessionID)

	// шаг 1: валидация контактов строго до любого сетевого вызова
	start := time.Now()
	if err := validation.ValidateContactForm(&form); err != nil {
		metrics.OrdersSubmitted.WithLabelValues("validation_error").Inc()
		return nil, err
	}
	metrics.OrderSubmitTime.WithLabelValues("validate").Observe(time.Since(start).Seconds())

	// шаги 2-3: сборка строк через кэши со сверкой цен с каталогом
	items, total := s.buildLines(ctx, cartMap, priceCache, details)

	req := &models.OrderRequest{
		Name:        form.Name,
		Phone:       form.Phone,
		Country:     form.Country,
		ContactType: form.ContactType,
		Items:       items,
		TotalSum:    total,
		Language:    form.Language,
	}
	if req.Language == "" {
		req.Language = models.LanguageRu
	}

	if err := validation.ValidateOrderRequest(req); err != nil {
		metrics.OrdersSubmitted.WithLabelValues("validation_error").Inc()
		return nil, err
	}

	start = time.Now()
	if err := s.notifier.SendOrder(ctx, req); err != nil {
		metrics.OrdersSubmitted.WithLabelValues("notify_error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	metrics.OrderSubmitTime.WithLabelValues("notify").Observe(time.Since(start).Seconds())

	// доставка принята: чистим все три хранилища и рассылаем пустую корзину
	if clearState != nil {
		clearState()
	}
	s.events.Publish(bus.TopicCartUpdate, cart.CartEvent{CartData: models.CartMap{}})

	metrics.OrdersSubmitted.WithLabelValues("success").Inc()
	log.Printf("заказ от %s отправлен, позиций: %d, сумма: %.0f", req.Name, len(req.Items), req.TotalSum)
	return req, nil
}

// buildLines разрешает строки корзины через кэши снимков и цен, сверяя
// цену каждой строки с каталогом. Кэш не авторитетен: если каталог отвечает,
// его цена замещает кэшированную до подсчета суммы. Недоступность каталога
// не валит оформление — остаемся на кэшированной цене.
func (s *Submitter) buildLines(ctx context.Context, cartMap models.CartMap, priceCache models.PriceCache, details models.DetailCache) ([]models.OrderItem, float64) {
	start := time.Now()
	defer func() {
		metrics.OrderSubmitTime.WithLabelValues("revalidate").Observe(time.Since(start).Seconds())
	}()

	ids := make([]string, 0, len(cartMap))
	for id := range cartMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]models.OrderItem, 0, len(cartMap))
	total := 0.0

	for _, id := range ids {
		qty := cartMap[id]
		name := details[id].Name
		if name == "" {
			name = "Товар " + id
		}

		price := priceCache[id]
		if s.prices != nil {
			if current, err := s.prices.PriceByID(ctx, id); err == nil && current > 0 {
				if current != price {
					log.Printf("цена %s разошлась с каталогом: кэш %.2f, каталог %.2f", id, price, current)
				}
				price = current
			}
		}

		item := models.OrderItem{ID: id, Name: name, Quantity: qty, Price: price}
		items = append(items, item)
		total += item.LineTotal()
	}

	return items, total
}

func (s *Submitter) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *Submitter) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
