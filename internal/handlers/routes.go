package handlers

import (
	"net/http"

	"storefront/internal/middleware"

	"github.com/gorilla/mux"
)

// Router собирает все маршруты витрины и админки.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// каталог
	r.HandleFunc("/products", h.SearchProductsHandler).Methods(http.MethodGet)
	r.HandleFunc("/products/favorites", h.FavoritesProductsHandler).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", h.GetProductHandler).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.GetCategoriesHandler).Methods(http.MethodGet)
	r.HandleFunc("/settings/installment", h.InstallmentHandler).Methods(http.MethodGet)

	// корзина и избранное
	r.HandleFunc("/cart", h.GetCartHandler).Methods(http.MethodGet)
	r.HandleFunc("/cart", h.UpdateCartHandler).Methods(http.MethodPost)
	r.HandleFunc("/cart/{id}", h.RemoveCartLineHandler).Methods(http.MethodDelete)
	r.HandleFunc("/favorites/toggle", h.ToggleFavoriteHandler).Methods(http.MethodPost)
	r.HandleFunc("/language", h.LanguageHandler).Methods(http.MethodPost)

	// оформление заказа
	r.HandleFunc("/orders/send", h.SubmitOrderHandler).Methods(http.MethodPost)

	// админка
	r.HandleFunc("/admin/login", h.AdminLoginHandler).Methods(http.MethodPost)
	r.HandleFunc("/admin/logout", h.AdminLogoutHandler).Methods(http.MethodPost)

	adminRouter := r.PathPrefix("/admin").Subrouter()
	adminRouter.Use(h.RequireAdmin)
	adminRouter.HandleFunc("/categories", h.SaveCategoryHandler).Methods(http.MethodPost)
	adminRouter.HandleFunc("/categories/{id}", h.DeleteCategoryHandler).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/products", h.SaveProductHandler).Methods(http.MethodPost)
	adminRouter.HandleFunc("/products/{id}", h.DeleteProductHandler).Methods(http.MethodDelete)
	adminRouter.HandleFunc("/installment", h.SaveInstallmentHandler).Methods(http.MethodPost)
	adminRouter.HandleFunc("/images", h.UploadImageHandler).Methods(http.MethodPost)
	adminRouter.HandleFunc("/export", h.ExportExcelHandler).Methods(http.MethodGet)
	adminRouter.HandleFunc("/import", h.ImportExcelHandler).Methods(http.MethodPost)

	r.HandleFunc("/metrics", h.MetricsHandler).Methods(http.MethodGet)

	return r
}
