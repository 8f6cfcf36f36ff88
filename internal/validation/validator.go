package validation

import (
	"fmt"
	"math"

	"storefront/models"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// регион по умолчанию — витрина работает в Кыргызстане
const defaultRegion = "KG"

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("phone", validatePhone)
}

// ValidateContactForm проверяет контактные поля до любого сетевого вызова.
// Ошибка здесь означает: ни одного запроса наружу не было.
func ValidateContactForm(form *models.ContactForm) error {
	if form == nil {
		return fmt.Errorf("форма пуста")
	}

	if err := validate.Struct(form); err != nil {
		return formatValidationError(err)
	}

	return validatePhoneForCountry(form.Phone, form.Country)
}

// ValidateOrderRequest проверяет собранную заявку перед отправкой.
func ValidateOrderRequest(req *models.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("заявка пуста")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if err := validatePhoneForCountry(req.Phone, req.Country); err != nil {
		return err
	}

	if err := validateTotals(req); err != nil {
		return err
	}

	return nil
}

// ValidateProduct проверяет товар перед сохранением в каталог.
func ValidateProduct(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("товар пуст")
	}
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateCategory проверяет категорию перед сохранением.
func ValidateCategory(c *models.Category) error {
	if c == nil {
		return fmt.Errorf("категория пуста")
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// validatePhone — быстрая структурная проверка тега: разбор и проверка
// по нумерационному плану региона по умолчанию.
func validatePhone(fl validator.FieldLevel) bool {
	num, err := phonenumbers.Parse(fl.Field().String(), defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// validatePhoneForCountry проверяет номер по плану выбранной страны.
func validatePhoneForCountry(phone, country string) error {
	region := country
	if region == "" {
		region = defaultRegion
	}

	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return fmt.Errorf("Phone: номер не разбирается для страны %s", region)
	}
	if !phonenumbers.IsValidNumber(num) {
		return fmt.Errorf("Phone: номер не соответствует нумерационному плану %s", region)
	}
	return nil
}

// validateTotals сверяет заявленную сумму с суммой строк.
func validateTotals(req *models.OrderRequest) error {
	lineSum := 0.0
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("items[%d]: количество должно быть положительным", i)
		}
		lineSum += item.LineTotal()
	}

	if math.Abs(lineSum-req.TotalSum) > 0.01 {
		return fmt.Errorf("totalSum %.2f не сходится с суммой строк %.2f", req.TotalSum, lineSum)
	}
	return nil
}

// свои текста ошибок
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errorMessages := make([]string, 0, len(validationErrors))

		for _, e := range validationErrors {
			var message string

			switch e.Tag() {
			case "required":
				message = fmt.Sprintf("%s: поле обязательно для заполнения", e.Field())
			case "min":
				message = fmt.Sprintf("%s: минимальная длина - %s символов", e.Field(), e.Param())
			case "max":
				message = fmt.Sprintf("%s: максимальная длина - %s символов", e.Field(), e.Param())
			case "oneof":
				message = fmt.Sprintf("%s: допустимые значения - %s", e.Field(), e.Param())
			case "gt":
				message = fmt.Sprintf("%s: должно быть больше %s", e.Field(), e.Param())
			case "gte":
				message = fmt.Sprintf("%s: должно быть больше или равно %s", e.Field(), e.Param())
			case "phone":
				message = fmt.Sprintf("%s: неверный формат телефона", e.Field())
			case "url":
				message = fmt.Sprintf("%s: неверный формат ссылки", e.Field())
			case "iso3166_1_alpha2":
				message = fmt.Sprintf("%s: неизвестный код страны", e.Field())
			default:
				message = fmt.Sprintf("%s: нарушено правило '%s'", e.Field(), e.Tag())
			}

			errorMessages = append(errorMessages, message)
		}

		fullMessage := "Ошибки валидации:\n"
		for i, msg := range errorMessages {
			fullMessage += fmt.Sprintf("%d. %s\n", i+1, msg)
		}

		return fmt.Errorf("%s", fullMessage)
	}
	return err
}
