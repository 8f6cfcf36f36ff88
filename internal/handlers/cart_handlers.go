package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"storefront/internal/bus"
	"storefront/internal/cart"
	"storefront/internal/clientstore"
	"storefront/internal/db"
	"storefront/models"

	"github.com/gorilla/mux"
)

// cartLine — строка корзины для отображения, собранная из кэшей сессии.
type cartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Images   []string `json:"images,omitempty"`
}

type cartView struct {
	Items      []cartLine `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalSum   float64    `json:"totalSum"`
}

// GetCartHandler собирает корзину из cookie и кэшей сессии.
func (h *Handler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := h.Sessions.EnsureSession(w, r)
	cartMap := clientstore.ReadCart(r)

	prices := h.Sessions.Prices(sessionID)
	details := h.Sessions.Details(sessionID)

	writeJSON(w, http.StatusOK, buildCartView(cartMap, prices, details))
}

// UpdateCartHandler применяет изменение количества к строке корзины.
// Цикл чтение-изменение-запись идет под блокировкой сессии, чтобы два
// быстрых клика не потеряли обновления друг друга.
func (h *Handler) UpdateCartHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
		Delta     int    `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}
	if body.ProductID == "" || body.Delta == 0 {
		http.Error(w, "нужны productId и delta != 0", http.StatusBadRequest)
		return
	}

	sessionID := h.Sessions.EnsureSession(w, r)
	unlock := h.Sessions.Lock(sessionID)
	defer unlock()

	cartMap := clientstore.ReadCart(r)
	prices := h.Sessions.Prices(sessionID)
	details := h.Sessions.Details(sessionID)

	// при добавлении новой строки берем цену и снимок из каталога
	var knownPrice *float64
	var knownDetail *models.ProductDetail
	if body.Delta > 0 {
		if _, cached := details[body.ProductID]; !cached {
			product, err := h.DB.GetProduct(body.ProductID)
			if err != nil {
				if errors.Is(err, db.ErrNotFound) {
					http.Error(w, "товар не найден", http.StatusNotFound)
					return
				}
				log.Printf("не удалось получить товар %s: %v", body.ProductID, err)
				http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
				return
			}
			knownPrice = &product.Price
			detail := productDetail(product, clientstore.ReadLanguage(r))
			knownDetail = &detail
		}
	}

	change := cart.ApplyQuantityDelta(body.ProductID, body.Delta, cartMap, prices, details, knownPrice, knownDetail)

	clientstore.WriteCart(w, change.NextCart)
	h.Sessions.SetPrices(sessionID, change.NextPrices)
	h.Sessions.SetDetails(sessionID, change.NextDetails)
	h.Events.Publish(bus.TopicCartUpdate, change.Emit)

	writeJSON(w, http.StatusOK, buildCartView(change.NextCart, change.NextPrices, change.NextDetails))
}

// RemoveCartLineHandler удаляет строку целиком. Повторное удаление
// отсутствующей строки отвечает 200: результат тот же.
func (h *Handler) RemoveCartLineHandler(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	sessionID := h.Sessions.EnsureSession(w, r)
	unlock := h.Sessions.Lock(sessionID)
	defer unlock()

	cartMap := clientstore.ReadCart(r)
	prices := h.Sessions.Prices(sessionID)
	details := h.Sessions.Details(sessionID)

	change := cart.RemoveLine(productID, cartMap, prices, details)

	clientstore.WriteCart(w, change.NextCart)
	h.Sessions.SetPrices(sessionID, change.NextPrices)
	h.Sessions.SetDetails(sessionID, change.NextDetails)
	h.Events.Publish(bus.TopicCartUpdate, change.Emit)

	writeJSON(w, http.StatusOK, buildCartView(change.NextCart, change.NextPrices, change.NextDetails))
}

// ToggleFavoriteHandler переключает товар в избранном.
func (h *Handler) ToggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}
	if body.ProductID == "" {
		http.Error(w, "нужен productId", http.StatusBadRequest)
		return
	}

	favorites := clientstore.ReadFavorites(r)
	change := cart.ToggleFavorite(body.ProductID, favorites)

	clientstore.WriteFavorites(w, change.NextFavorites)
	h.Events.Publish(bus.TopicFavoritesUpdate, change.Emit)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"favorites": change.NextFavorites,
	})
}

func buildCartView(cartMap models.CartMap, prices models.PriceCache, details models.DetailCache) cartView {
	view := cartView{Items: make([]cartLine, 0, len(cartMap))}
	for id, qty := range cartMap {
		detail := details[id]
		name := detail.Name
		if name == "" {
			name = "Товар " + id
		}
		view.Items = append(view.Items, cartLine{
			ID:       id,
			Name:     name,
			Quantity: qty,
			Price:    prices[id],
			Images:   detail.Images,
		})
	}
	view.TotalItems = cartMap.TotalItems()
	view.TotalSum = cartMap.Total(prices)
	return view
}

func productDetail(p *models.Product, lang models.Language) models.ProductDetail {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	return models.ProductDetail{
		Name:        p.Name(lang),
		Description: p.Description,
		Price:       p.Price,
		Images:      images,
	}
}
