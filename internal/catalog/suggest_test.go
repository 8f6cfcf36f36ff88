package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestServer(t *testing.T, requests *atomic.Int32, delays map[string]time.Duration) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		q := r.URL.Query().Get("search")
		if d, ok := delays[q]; ok {
			time.Sleep(d)
		}
		_ = json.NewEncoder(w).Encode(models.ProductPage{
			Products: []models.Product{{ID: q, NameRu: q}},
		})
	}))
}

func TestSuggester_DebouncesRapidInput(t *testing.T) {
	var requests atomic.Int32
	srv := suggestServer(t, &requests, nil)
	defer srv.Close()

	var mu sync.Mutex
	var got []string

	s := NewSuggester(NewClient(srv.URL), 50*time.Millisecond, func(query string, _ []models.Product) {
		mu.Lock()
		got = append(got, query)
		mu.Unlock()
	})

	// быстрый набор: каждый ввод сбрасывает таймер предыдущего
	s.Input("д")
	s.Input("ди")
	s.Input("див")
	s.Input("диван")

	time.Sleep(300 * time.Millisecond)

	assert.EqualValues(t, 1, requests.Load(), "улететь должен только последний запрос")
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)
	assert.Equal(t, "диван", got[0])
}

func TestSuggester_EmptyInputCancelsPending(t *testing.T) {
	var requests atomic.Int32
	srv := suggestServer(t, &requests, nil)
	defer srv.Close()

	s := NewSuggester(NewClient(srv.URL), 50*time.Millisecond, nil)

	s.Input("диван")
	s.Input("")

	time.Sleep(150 * time.Millisecond)
	assert.EqualValues(t, 0, requests.Load())
}

func TestSuggester_StaleResponseDiscarded(t *testing.T) {
	var requests atomic.Int32
	// первый запрос отвечает медленнее второго
	srv := suggestServer(t, &requests, map[string]time.Duration{"старый": 200 * time.Millisecond})
	defer srv.Close()

	var mu sync.Mutex
	var got []string

	s := NewSuggester(NewClient(srv.URL), 10*time.Millisecond, func(query string, _ []models.Product) {
		mu.Lock()
		got = append(got, query)
		mu.Unlock()
	})

	s.Input("старый")
	time.Sleep(50 * time.Millisecond) // таймер первого успел сработать, запрос в полете
	s.Input("новый")

	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1, "ответ первого запроса должен быть отброшен по номеру поколения")
	assert.Equal(t, "новый", got[0])
}
