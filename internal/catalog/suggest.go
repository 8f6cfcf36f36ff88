package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"storefront/models"
)

// Suggester — дебаунс подсказок поиска. Новый ввод сбрасывает таймер
// несработавшего запроса; уже улетевшие запросы не отменяются, их
// результат отбрасывается по номеру поколения, если с тех пор стартовал
// более новый запрос. Таймер сам по себе не защищает от гонки ответов.
type Suggester struct {
	client *Client
	window time.Duration
	onDone func(query string, products []models.Product)

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64 // номер последнего запланированного запроса
	last  uint64 // номер последнего доставленного ответа
}

func NewSuggester(client *Client, window time.Duration, onDone func(string, []models.Product)) *Suggester {
	return &Suggester{
		client: client,
		window: window,
		onDone: onDone,
	}
}

// Input сообщает о новом вводе пользователя. Пустой запрос просто гасит
// отложенный таймер.
func (s *Suggester) Input(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if query == "" {
		return
	}

	s.seq++
	token := s.seq
	s.timer = time.AfterFunc(s.window, func() {
		s.fetch(token, query)
	})
}

func (s *Suggester) fetch(token uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	page, err := s.client.Search(ctx, models.SearchParams{Search: query, Page: 1})
	if err != nil {
		log.Printf("подсказки для %q не получены: %v", query, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// ответ устарел: после него стартовал или уже доставился более новый
	if token < s.seq || token <= s.last {
		return
	}
	s.last = token

	if s.onDone != nil {
		s.onDone(query, page.Products)
	}
}
