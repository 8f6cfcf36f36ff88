package clientstore

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"storefront/models"
)

// Имена cookie фиксированы: на них завязаны все страницы витрины.
const (
	CookieCart      = "cart"
	CookieFavorites = "favorites"
	CookieLanguage  = "preferred_language"
	CookieSession   = "session_id"
)

const (
	cartTTL      = 7 * 24 * time.Hour
	favoritesTTL = 30 * 24 * time.Hour
	languageTTL  = 365 * 24 * time.Hour
)

// ReadCart читает корзину из cookie. Битый или отсутствующий JSON
// трактуется как пустая корзина, а не как ошибка. Значения <= 0
// отбрасываются при чтении: ноль в корзине не хранится.
func ReadCart(r *http.Request) models.CartMap {
	raw, ok := readCookieValue(r, CookieCart)
	if !ok {
		return models.CartMap{}
	}

	var cart models.CartMap
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		log.Printf("битая cookie %s, считаем корзину пустой: %v", CookieCart, err)
		return models.CartMap{}
	}

	for id, qty := range cart {
		if qty <= 0 {
			delete(cart, id)
		}
	}
	return cart
}

// WriteCart сохраняет корзину. Пустая корзина означает полное удаление
// cookie — проверки "корзина пуста" опираются на отсутствие, не на "{}".
func WriteCart(w http.ResponseWriter, cart models.CartMap) {
	if len(cart) == 0 {
		deleteCookie(w, CookieCart)
		return
	}

	data, err := json.Marshal(cart)
	if err != nil {
		log.Printf("не удалось сериализовать корзину: %v", err)
		return
	}
	setCookie(w, CookieCart, string(data), cartTTL)
}

// ClearCart полностью удаляет cookie корзины.
func ClearCart(w http.ResponseWriter) {
	deleteCookie(w, CookieCart)
}

// ReadFavorites читает избранное; битое значение => пустой список.
func ReadFavorites(r *http.Request) []string {
	raw, ok := readCookieValue(r, CookieFavorites)
	if !ok {
		return nil
	}

	var favorites []string
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil {
		log.Printf("битая cookie %s, считаем избранное пустым: %v", CookieFavorites, err)
		return nil
	}
	return favorites
}

// WriteFavorites сохраняет список избранного целиком.
func WriteFavorites(w http.ResponseWriter, favorites []string) {
	if len(favorites) == 0 {
		deleteCookie(w, CookieFavorites)
		return
	}

	data, err := json.Marshal(favorites)
	if err != nil {
		log.Printf("не удалось сериализовать избранное: %v", err)
		return
	}
	setCookie(w, CookieFavorites, string(data), favoritesTTL)
}

// ReadLanguage возвращает язык покупателя, по умолчанию русский.
func ReadLanguage(r *http.Request) models.Language {
	raw, ok := readCookieValue(r, CookieLanguage)
	if !ok {
		return models.LanguageRu
	}
	lang := models.Language(raw)
	if !lang.Valid() {
		return models.LanguageRu
	}
	return lang
}

// WriteLanguage сохраняет выбранный язык примерно на год.
func WriteLanguage(w http.ResponseWriter, lang models.Language) {
	if !lang.Valid() {
		lang = models.LanguageRu
	}
	setCookie(w, CookieLanguage, string(lang), languageTTL)
}

// Значения кодируются base64: JSON содержит символы, запрещенные в cookie.
func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.URLEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func deleteCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func readCookieValue(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}
	decoded, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		// не base64 — возможно старый формат, пробуем как есть
		return c.Value, true
	}
	return string(decoded), true
}
