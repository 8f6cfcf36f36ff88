package bus

import (
	"log"
	"sync"
)

// Имена сигналов соответствуют браузерным событиям исходного фронтенда —
// подписчики завязаны на точные строки.
const (
	TopicCartUpdate      = "cartUpdate"
	TopicFavoritesUpdate = "favoritesUpdate"
)

// Handler получает полезную нагрузку события и обязан считать её
// новым источником истины.
type Handler func(payload any)

type subscription struct {
	id      int
	handler Handler
}

// Bus — внутрипроцессная шина событий. Доставка синхронная, в порядке
// подписки, внутри одного вызова Publish. Кросс-процессной доставки нет.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Subscribe регистрирует обработчик темы и возвращает функцию отписки.
// Подписчик обязан отписаться при завершении, иначе утечка.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := b.subs[topic]
		for i, sub := range list {
			if sub.id == id {
				b.subs[topic] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish синхронно доставляет событие всем подписчикам темы.
// Публикация без подписчиков — no-op, не ошибка.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	list := make([]subscription, len(b.subs[topic]))
	copy(list, b.subs[topic])
	b.mu.RUnlock()

	if len(list) == 0 {
		return
	}

	for _, sub := range list {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("паника в подписчике %s: %v", topic, r)
				}
			}()
			sub.handler(payload)
		}()
	}
}

// SubscriberCount — число подписчиков темы.
func (b *Bus) SubscriberCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
