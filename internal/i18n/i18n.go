package i18n

import "storefront/models"

// Тексты уведомления о заказе и ответов покупателю на двух языках витрины.

type catalog struct {
	NewOrder      string
	Customer      string
	Phone         string
	ContactVia    string
	OrderLines    string
	Total         string
	OrderAccepted string
	OrderFailed   string
}

var catalogs = map[models.Language]catalog{
	models.LanguageRu: {
		NewOrder:      "Новый заказ",
		Customer:      "Покупатель",
		Phone:         "Телефон",
		ContactVia:    "Связь",
		OrderLines:    "Состав заказа",
		Total:         "Итого",
		OrderAccepted: "Заказ принят, мы свяжемся с вами",
		OrderFailed:   "Не удалось отправить заказ, попробуйте еще раз",
	},
	models.LanguageKy: {
		NewOrder:      "Жаңы буйрутма",
		Customer:      "Сатып алуучу",
		Phone:         "Телефон",
		ContactVia:    "Байланыш",
		OrderLines:    "Буйрутманын курамы",
		Total:         "Жалпы",
		OrderAccepted: "Буйрутма кабыл алынды, биз сиз менен байланышабыз",
		OrderFailed:   "Буйрутма жөнөтүлгөн жок, кайра аракет кылыңыз",
	},
}

func get(lang models.Language) catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[models.LanguageRu]
}

func NewOrder(lang models.Language) string      { return get(lang).NewOrder }
func Customer(lang models.Language) string      { return get(lang).Customer }
func Phone(lang models.Language) string         { return get(lang).Phone }
func ContactVia(lang models.Language) string    { return get(lang).ContactVia }
func OrderLines(lang models.Language) string    { return get(lang).OrderLines }
func Total(lang models.Language) string         { return get(lang).Total }
func OrderAccepted(lang models.Language) string { return get(lang).OrderAccepted }
func OrderFailed(lang models.Language) string   { return get(lang).OrderFailed }
