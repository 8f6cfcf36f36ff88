package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"storefront/internal/admin"
	"storefront/internal/bus"
	"storefront/internal/clientstore"
	"storefront/internal/db"
	"storefront/internal/interfaces"
	"storefront/internal/orders"
	"storefront/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	DB        interfaces.Database
	Sessions  *clientstore.SessionStore
	Submitter *orders.Submitter
	Events    *bus.Bus
	Auth      *admin.Auth
	Uploader  interfaces.ImageUploader
	Tracer    trace.Tracer
}

func NewHandler(database interfaces.Database, sessions *clientstore.SessionStore, submitter *orders.Submitter, events *bus.Bus, auth *admin.Auth, uploader interfaces.ImageUploader, tracer trace.Tracer) *Handler {
	return &Handler{
		DB:        database,
		Sessions:  sessions,
		Submitter: submitter,
		Events:    events,
		Auth:      auth,
		Uploader:  uploader,
		Tracer:    tracer,
	}
}

// SearchProductsHandler — выдача каталога. Неразборчивые параметры не
// считаются ошибкой, вместо них подставляются значения по умолчанию.
func (h *Handler) SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	params := parseSearchParams(r)

	page, err := h.DB.SearchProducts(params)
	if err != nil {
		log.Printf("поиск по каталогу не удался: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) GetProductHandler(w http.ResponseWriter, r *http.Request) {
	_, span := h.Tracer.Start(r.Context(), "http.get_product")
	defer span.End()

	id := mux.Vars(r)["id"]
	span.SetAttributes(attribute.String("product.id", id))

	product, err := h.DB.GetProduct(id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, db.ErrNotFound) {
			errMsg := "товар не найден"
			http.Error(w, errMsg, http.StatusNotFound)
			span.SetStatus(codes.Error, errMsg)
		} else {
			errMsg := "внутренняя ошибка сервера"
			http.Error(w, errMsg, http.StatusInternalServerError)
			span.SetStatus(codes.Error, errMsg)
		}
		return
	}

	span.SetStatus(codes.Ok, "товар получен")
	writeJSON(w, http.StatusOK, product)
}

// FavoritesProductsHandler наполняет страницу избранного: принимает список
// id и возвращает только существующие товары. Удаленные из каталога id
// молча пропускаются.
func (h *Handler) FavoritesProductsHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}

	if len(body.IDs) == 0 {
		writeJSON(w, http.StatusOK, []interface{}{})
		return
	}

	products, err := h.DB.GetProductsByIDs(body.IDs)
	if err != nil {
		log.Printf("не удалось получить товары избранного: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.DB.GetCategories()
	if err != nil {
		log.Printf("не удалось получить категории: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) InstallmentHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := h.DB.GetInstallmentPlans()
	if err != nil {
		log.Printf("не удалось получить настройки рассрочки: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

// LanguageHandler сохраняет выбранный язык в cookie на год.
func (h *Handler) LanguageHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}

	lang := models.Language(body.Language)
	if !lang.Valid() {
		http.Error(w, "неизвестный язык", http.StatusBadRequest)
		return
	}

	clientstore.WriteLanguage(w, lang)
	writeJSON(w, http.StatusOK, map[string]string{"language": string(lang)})
}

var promHandler = promhttp.Handler()

func (h *Handler) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	promHandler.ServeHTTP(w, r)
}

func parseSearchParams(r *http.Request) models.SearchParams {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(q.Get("perPage"))
	if err != nil || perPage < 1 || perPage > 100 {
		perPage = 20
	}

	return models.SearchParams{
		Search:     q.Get("search"),
		CategoryID: q.Get("categoryId"),
		SortBy:     q.Get("sortBy"),
		SortOrder:  q.Get("sortOrder"),
		Page:       page,
		PerPage:    perPage,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ошибка кодирования JSON: %v", err)
	}
}
