package models

// Language — язык интерфейса покупателя.
type Language string

const (
	LanguageRu Language = "ru"
	LanguageKy Language = "ky"
)

// Valid сообщает, поддерживается ли язык.
func (l Language) Valid() bool {
	return l == LanguageRu || l == LanguageKy
}

// CartMap — корзина покупателя: id товара -> количество.
// Инвариант: количество всегда > 0, удаление строки = удаление ключа.
type CartMap map[string]int

// Clone возвращает независимую копию корзины.
func (c CartMap) Clone() CartMap {
	next := make(CartMap, len(c))
	for id, qty := range c {
		next[id] = qty
	}
	return next
}

// TotalItems — суммарное количество единиц товара в корзине.
func (c CartMap) TotalItems() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

// PriceCache — последняя известная цена за единицу по id товара.
// Не авторитетен: может расходиться с каталогом (сверяется при оформлении).
type PriceCache map[string]float64

// Clone возвращает независимую копию кэша цен.
func (p PriceCache) Clone() PriceCache {
	next := make(PriceCache, len(p))
	for id, price := range p {
		next[id] = price
	}
	return next
}

// ProductDetail — снимок товара для отображения корзины без похода в каталог.
type ProductDetail struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
}

// DetailCache — снимки товаров по id.
type DetailCache map[string]ProductDetail

// Clone возвращает независимую копию кэша снимков.
func (d DetailCache) Clone() DetailCache {
	next := make(DetailCache, len(d))
	for id, detail := range d {
		next[id] = detail
	}
	return next
}

// Total считает сумму корзины по кэшу цен.
func (c CartMap) Total(prices PriceCache) float64 {
	total := 0.0
	for id, qty := range c {
		total += prices[id] * float64(qty)
	}
	return total
}
