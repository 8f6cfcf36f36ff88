package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "диван", r.URL.Query().Get("search"))
		assert.Equal(t, "c1", r.URL.Query().Get("categoryId"))
		assert.Equal(t, "color:gray", r.URL.Query().Get("filters"))
		assert.Equal(t, "20", r.URL.Query().Get("perPage"))

		_ = json.NewEncoder(w).Encode(models.ProductPage{
			Products:    []models.Product{{ID: "p1", NameRu: "Диван", Price: 15000}},
			Total:       1,
			TotalPages:  1,
			CurrentPage: 1,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	page, err := client.Search(context.Background(), models.SearchParams{
		Search: "диван", CategoryID: "c1", Filters: "color:gray", Page: 1, PerPage: 20,
	})

	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p1", page.Products[0].ID)
}

func TestClient_ByIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/favorites", r.URL.Path)

		var body struct {
			IDs []string `json:"ids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"p1", "p2"}, body.IDs)

		_ = json.NewEncoder(w).Encode(map[string][]models.Product{
			"products": {{ID: "p1", Price: 100}, {ID: "p2", Price: 200}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	products, err := client.ByIDs(context.Background(), []string{"p1", "p2"})

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestClient_PriceByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]models.Product{
			"products": {{ID: "p1", Price: 750}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	price, err := client.PriceByID(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, 750.0, price)
}

func TestClient_PriceByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]models.Product{"products": {}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.PriceByID(context.Background(), "нет")

	assert.Error(t, err)
}

func TestClient_InstallmentPlans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/settings/installment", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string][]models.InstallmentPlan{
			"installments": {{Months: "6", Percent: 5}, {Months: "12", Percent: 10}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	plans, err := client.InstallmentPlans(context.Background())

	require.NoError(t, err)
	assert.Len(t, plans, 2)
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "все сломалось", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Search(context.Background(), models.SearchParams{Search: "x"})

	assert.Error(t, err)
}

func TestClient_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{не json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Search(context.Background(), models.SearchParams{Search: "x"})

	assert.Error(t, err)
}
