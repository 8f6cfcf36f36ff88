package models

// ContactForm — контактные поля формы заказа. Проверяются до сборки
// строк и до любого сетевого вызова.
type ContactForm struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Phone       string   `json:"phone" validate:"required,phone"`
	Country     string   `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	ContactType string   `json:"contactType" validate:"required,oneof=whatsapp telegram call"`
	Language    Language `json:"language" validate:"omitempty,oneof=ru ky"`
}

// OrderRequest — заявка на заказ (POST /orders/send).
type OrderRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=100"`
	Phone       string      `json:"phone" validate:"required,phone"`
	Country     string      `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	ContactType string      `json:"contactType" validate:"required,oneof=whatsapp telegram call"`
	Items       []OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalSum    float64     `json:"totalSum" validate:"required,gt=0"`
	Language    Language    `json:"language" validate:"required,oneof=ru ky"`
}

// OrderItem — строка заказа, разрешённая через кэши корзины.
type OrderItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price" validate:"required,gt=0"`
}

// LineTotal — стоимость строки заказа.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
