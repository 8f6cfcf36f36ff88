package clientstore

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"storefront/internal/metrics"
	"storefront/models"

	"github.com/google/uuid"
)

// Области серверного хранилища сессии — аналог local storage браузера.
const (
	AreaCartPrices     = "cartPrices"
	AreaProductDetails = "productDetails"
)

// SessionStore хранит кэши цен и снимков товаров по id сессии.
// Сессия живет ttl с момента последнего обращения, при переполнении
// вытесняется самая старая. Чтение никогда не создает сессию: заход
// с протухшим id не должен вытеснить чью-то живую сессию.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
	ttl      time.Duration
	maxSize  int
}

type session struct {
	mu      sync.Mutex   // сериализация циклов чтение-изменение-запись
	dataMu  sync.RWMutex // защищает prices и details
	prices  models.PriceCache
	details models.DetailCache
	touched atomic.Int64 // unix-наносекунды последнего обращения
}

func NewSessionStore(ttl time.Duration, maxSize int) *SessionStore {
	s := &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		maxSize:  maxSize,
	}
	go s.cleanup()
	return s
}

// EnsureSession возвращает id сессии из cookie, при отсутствии выдает новый.
func (s *SessionStore) EnsureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(CookieSession); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieSession,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Lock сериализует циклы чтение-изменение-запись одной сессии: два
// быстрых клика не должны терять обновления друг друга.
func (s *SessionStore) Lock(sessionID string) func() {
	item := s.get(sessionID)
	item.mu.Lock()
	return item.mu.Unlock
}

// Prices возвращает копию кэша цен сессии. Отсутствующая сессия
// читается как пустая и не создается.
func (s *SessionStore) Prices(sessionID string) models.PriceCache {
	metrics.SessionOperations.WithLabelValues("get", AreaCartPrices).Inc()
	item, ok := s.peek(sessionID)
	if !ok {
		return models.PriceCache{}
	}
	item.dataMu.RLock()
	defer item.dataMu.RUnlock()
	return item.prices.Clone()
}

// Details возвращает копию кэша снимков товаров сессии.
func (s *SessionStore) Details(sessionID string) models.DetailCache {
	metrics.SessionOperations.WithLabelValues("get", AreaProductDetails).Inc()
	item, ok := s.peek(sessionID)
	if !ok {
		return models.DetailCache{}
	}
	item.dataMu.RLock()
	defer item.dataMu.RUnlock()
	return item.details.Clone()
}

// SetPrices заменяет кэш цен сессии целиком.
func (s *SessionStore) SetPrices(sessionID string, prices models.PriceCache) {
	item := s.get(sessionID)
	item.dataMu.Lock()
	item.prices = prices.Clone()
	item.dataMu.Unlock()
	metrics.SessionOperations.WithLabelValues("set", AreaCartPrices).Inc()
}

// SetDetails заменяет кэш снимков сессии целиком.
func (s *SessionStore) SetDetails(sessionID string, details models.DetailCache) {
	item := s.get(sessionID)
	item.dataMu.Lock()
	item.details = details.Clone()
	item.dataMu.Unlock()
	metrics.SessionOperations.WithLabelValues("set", AreaProductDetails).Inc()
}

// Clear полностью удаляет обе области сессии (после успешного заказа).
func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	metrics.SessionOperations.WithLabelValues("clear", "all").Inc()
}

// peek ищет существующую сессию, не создавая новой.
func (s *SessionStore) peek(sessionID string) (*session, bool) {
	s.mu.RLock()
	item, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		item.touched.Store(time.Now().UnixNano())
	}
	return item, ok
}

// get возвращает сессию, создавая её при необходимости. Сюда попадают
// только пишущие пути (Set*, Lock) — чтение идет через peek.
func (s *SessionStore) get(sessionID string) *session {
	if item, ok := s.peek(sessionID); ok {
		return item
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.sessions[sessionID]; ok {
		return item
	}
	if len(s.sessions) >= s.maxSize {
		s.evictOldest()
	}
	item := &session{
		prices:  models.PriceCache{},
		details: models.DetailCache{},
	}
	item.touched.Store(time.Now().UnixNano())
	s.sessions[sessionID] = item
	return item
}

func (s *SessionStore) evictOldest() {
	var oldestKey string
	var oldestTime int64

	for key, item := range s.sessions {
		if touched := item.touched.Load(); oldestTime == 0 || touched < oldestTime {
			oldestKey = key
			oldestTime = touched
		}
	}

	if oldestKey != "" {
		delete(s.sessions, oldestKey)
	}
}

func (s *SessionStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now().UnixNano()
		s.mu.Lock()
		for id, item := range s.sessions {
			if now-item.touched.Load() > int64(s.ttl) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}
