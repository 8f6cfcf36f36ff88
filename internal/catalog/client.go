package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/interfaces"
	"storefront/models"
)

var _ interfaces.PriceSource = (*Client)(nil)

// Client ходит в эндпоинты каталога. Витрина потребляет их как черный
// ящик: формы запросов/ответов фиксированы, реализация не важна.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Search — GET /products с поиском, фильтрами, сортировкой и пагинацией.
func (c *Client) Search(ctx context.Context, params models.SearchParams) (*models.ProductPage, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.CategoryID != "" {
		q.Set("categoryId", params.CategoryID)
	}
	if params.Filters != "" {
		q.Set("filters", params.Filters)
	}
	if params.SortBy != "" {
		q.Set("sortBy", params.SortBy)
		q.Set("sortOrder", params.SortOrder)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(params.PerPage))
	}

	var page models.ProductPage
	if err := c.getJSON(ctx, "/products?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ByIDs — POST /products/favorites, гидрация страницы избранного по списку id.
func (c *Client) ByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	body, err := json.Marshal(map[string][]string{"ids": ids})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/products/favorites", strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("каталог недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("каталог ответил %d", resp.StatusCode)
	}

	var out struct {
		Products []models.Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("битый ответ каталога: %w", err)
	}
	return out.Products, nil
}

// InstallmentPlans — GET /settings/installment для калькулятора рассрочки.
func (c *Client) InstallmentPlans(ctx context.Context) ([]models.InstallmentPlan, error) {
	var out struct {
		Installments []models.InstallmentPlan `json:"installments"`
	}
	if err := c.getJSON(ctx, "/settings/installment", &out); err != nil {
		return nil, err
	}
	return out.Installments, nil
}

// PriceByID возвращает актуальную цену товара для сверки при оформлении.
func (c *Client) PriceByID(ctx context.Context, productID string) (float64, error) {
	products, err := c.ByIDs(ctx, []string{productID})
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, fmt.Errorf("товар %s не найден в каталоге", productID)
	}
	return products[0].Price, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("каталог недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("каталог ответил %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("битый ответ каталога: %w", err)
	}
	return nil
}
