package cart

import (
	"storefront/internal/metrics"
	"storefront/models"
)

// Change — результат чистого перехода состояния корзины.
// NextCart/NextPrices/NextDetails — новые карты (исходные не изменяются),
// Emit — событие для рассылки подписчикам.
type Change struct {
	NextCart    models.CartMap
	NextPrices  models.PriceCache
	NextDetails models.DetailCache
	Emit        CartEvent
}

// CartEvent — полезная нагрузка события cartUpdate.
type CartEvent struct {
	CartData  models.CartMap
	ProductID string
	Price     float64
}

// FavoritesChange — результат переключения избранного.
type FavoritesChange struct {
	NextFavorites []string
	Emit          FavoritesEvent
}

// FavoritesEvent — полезная нагрузка события favoritesUpdate.
type FavoritesEvent struct {
	Favorites []string
}

// ApplyQuantityDelta применяет изменение количества к строке корзины.
// delta > 0 — добавление, delta < 0 — уменьшение. Количество <= 0 означает
// удаление ключа: ноль в корзине никогда не хранится. knownPrice/knownDetail
// передаются при первом добавлении строки (с карточки товара), чтобы кэши
// заполнялись без дополнительного запроса; nil — нет данных.
func ApplyQuantityDelta(productID string, delta int, current models.CartMap, prices models.PriceCache, details models.DetailCache, knownPrice *float64, knownDetail *models.ProductDetail) Change {
	nextCart := current.Clone()
	nextPrices := prices.Clone()
	nextDetails := details.Clone()

	newQuantity := nextCart[productID] + delta
	if newQuantity <= 0 {
		delete(nextCart, productID)
		// снимок больше не нужен; кэш цен намеренно не трогаем —
		// его отсутствие не является признаком чего-либо
		delete(nextDetails, productID)
	} else {
		nextCart[productID] = newQuantity
		if knownPrice != nil {
			nextPrices[productID] = *knownPrice
		}
		if knownDetail != nil {
			nextDetails[productID] = *knownDetail
		}
	}

	metrics.CartOperations.WithLabelValues("delta", "success").Inc()

	emitPrice := nextPrices[productID]
	if knownPrice != nil {
		emitPrice = *knownPrice
	}

	return Change{
		NextCart:    nextCart,
		NextPrices:  nextPrices,
		NextDetails: nextDetails,
		Emit: CartEvent{
			CartData:  nextCart,
			ProductID: productID,
			Price:     emitPrice,
		},
	}
}

// RemoveLine удаляет строку целиком независимо от количества.
// Повторный вызов для отсутствующего id — no-op, а не ошибка.
func RemoveLine(productID string, current models.CartMap, prices models.PriceCache, details models.DetailCache) Change {
	qty, ok := current[productID]
	if !ok {
		metrics.CartOperations.WithLabelValues("remove", "noop").Inc()
		return Change{
			NextCart:    current.Clone(),
			NextPrices:  prices.Clone(),
			NextDetails: details.Clone(),
			Emit:        CartEvent{CartData: current.Clone(), ProductID: productID},
		}
	}
	return ApplyQuantityDelta(productID, -qty, current, prices, details, nil, nil)
}

// ToggleFavorite переключает товар в избранном: есть — убираем фильтрацией,
// нет — добавляем в конец. Порядок вставки значения не имеет.
func ToggleFavorite(productID string, current []string) FavoritesChange {
	next := make([]string, 0, len(current)+1)
	found := false
	for _, id := range current {
		if id == productID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, productID)
	}

	metrics.CartOperations.WithLabelValues("favorite", "success").Inc()

	return FavoritesChange{
		NextFavorites: next,
		Emit:          FavoritesEvent{Favorites: next},
	}
}
