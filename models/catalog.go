package models

import "time"

type Category struct {
	ID        string    `json:"id"`
	NameRu    string    `json:"nameRu" validate:"required,max=200"`
	NameKy    string    `json:"nameKy" validate:"required,max=200"`
	Slug      string    `json:"slug" validate:"required,max=200"`
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID          string         `json:"id"`
	NameRu      string         `json:"nameRu" validate:"required,max=300"`
	NameKy      string         `json:"nameKy" validate:"required,max=300"`
	Slug        string         `json:"slug" validate:"required,max=300"`
	Description string         `json:"description"`
	Price       float64        `json:"price" validate:"required,gt=0"`
	CategoryID  string         `json:"categoryId" validate:"required"`
	Category    *Category      `json:"category,omitempty"`
	Images      []ProductImage `json:"images"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type ProductImage struct {
	ID       string `json:"id"`
	URL      string `json:"url" validate:"required,url"`
	PublicID string `json:"publicId"`
}

// Name возвращает название товара на выбранном языке.
func (p *Product) Name(lang Language) string {
	if lang == LanguageKy && p.NameKy != "" {
		return p.NameKy
	}
	return p.NameRu
}

// ProductPage — страница выдачи каталога (GET /products).
type ProductPage struct {
	Products    []Product `json:"products"`
	Total       int       `json:"total"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

// SearchParams — параметры поиска по каталогу.
type SearchParams struct {
	Search     string
	CategoryID string
	Filters    string // непрозрачная строка фильтров, передается как есть
	SortBy     string // price, name, created_at
	SortOrder  string // asc, desc
	Page       int
	PerPage    int
}

// InstallmentPlan — строка настроек рассрочки (GET /settings/installment).
type InstallmentPlan struct {
	Months  string  `json:"months" validate:"required"`
	Percent float64 `json:"percent" validate:"gte=0"`
}
