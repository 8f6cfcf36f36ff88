package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"storefront/internal/clientstore"
	"storefront/internal/db"
	"storefront/internal/excel"
	"storefront/internal/validation"
	"storefront/models"

	"github.com/gorilla/mux"
)

const maxUploadSize = 10 << 20 // 10 МБ на файл

// AdminLoginHandler проверяет пароль и выдает cookie администратора.
// Корзина при входе в админку удаляется: покупательское и админское
// состояние в одном браузере не смешиваются.
func (h *Handler) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}

	if err := h.Auth.Login(w, body.Password); err != nil {
		log.Printf("неудачная попытка входа в админку")
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	clientstore.ClearCart(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) AdminLogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.Auth.Logout(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// RequireAdmin пропускает запрос дальше только с валидной админской сессией.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Auth.IsAdmin(r) {
			http.Error(w, "требуется вход администратора", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) SaveCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateCategory(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.DB.SaveCategory(&category); err != nil {
		log.Printf("не удалось сохранить категорию: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.DB.DeleteCategory(id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "категория не найдена", http.StatusNotFound)
			return
		}
		log.Printf("не удалось удалить категорию %s: %v", id, err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) SaveProductHandler(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateProduct(&product); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.DB.SaveProduct(&product); err != nil {
		log.Printf("не удалось сохранить товар: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProductHandler удаляет товар и его изображения из хранилища.
// Ошибка удаления картинки заказ не валит: запись в каталоге важнее.
func (h *Handler) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.DB.GetProduct(id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "товар не найден", http.StatusNotFound)
			return
		}
		log.Printf("не удалось получить товар %s: %v", id, err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	if err := h.DB.DeleteProduct(id); err != nil {
		log.Printf("не удалось удалить товар %s: %v", id, err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	if h.Uploader != nil {
		for _, img := range product.Images {
			if err := h.Uploader.Delete(r.Context(), img.PublicID); err != nil {
				log.Printf("не удалось удалить изображение %s: %v", img.PublicID, err)
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) SaveInstallmentHandler(w http.ResponseWriter, r *http.Request) {
	var plans []models.InstallmentPlan
	if err := json.NewDecoder(r.Body).Decode(&plans); err != nil {
		http.Error(w, "Плохой JSON", http.StatusBadRequest)
		return
	}

	if err := h.DB.SaveInstallmentPlans(plans); err != nil {
		log.Printf("не удалось сохранить настройки рассрочки: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

// UploadImageHandler принимает multipart-файл и кладет его в хранилище.
func (h *Handler) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if h.Uploader == nil {
		http.Error(w, "хранилище изображений не настроено", http.StatusServiceUnavailable)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "файл слишком большой", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "нужен файл в поле image", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := h.Uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		log.Printf("загрузка изображения не удалась: %v", err)
		http.Error(w, "не удалось загрузить изображение", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, image)
}

// ExportExcelHandler отдает весь каталог одним xlsx-файлом.
func (h *Handler) ExportExcelHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.DB.GetCategories()
	if err != nil {
		log.Printf("выгрузка каталога: не удалось получить категории: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	page, err := h.DB.SearchProducts(models.SearchParams{Page: 1, PerPage: 10000})
	if err != nil {
		log.Printf("выгрузка каталога: не удалось получить товары: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	filename := "catalog-" + time.Now().Format("2006-01-02") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := excel.Export(w, page.Products, categories); err != nil {
		log.Printf("выгрузка каталога не удалась: %v", err)
	}
}

// ImportExcelHandler принимает xlsx и сохраняет валидные строки.
// Ответ содержит количество сохраненных и ошибки по битым строкам.
func (h *Handler) ImportExcelHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "файл слишком большой", http.StatusRequestEntityTooLarge)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "нужен файл в поле file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	categories, err := h.DB.GetCategories()
	if err != nil {
		log.Printf("импорт каталога: не удалось получить категории: %v", err)
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	result, err := excel.Import(file, categories)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved := 0
	rowErrors := make([]string, 0, len(result.Errors))
	for _, re := range result.Errors {
		rowErrors = append(rowErrors, fmt.Sprintf("строка %d: %v", re.Row, re.Err))
	}
	for i := range result.Products {
		if err := h.DB.SaveProduct(&result.Products[i]); err != nil {
			log.Printf("импорт каталога: не удалось сохранить %s: %v", result.Products[i].NameRu, err)
			rowErrors = append(rowErrors, "не удалось сохранить "+result.Products[i].NameRu)
			continue
		}
		saved++
	}

	log.Printf("импорт каталога: сохранено %d, ошибок %d", saved, len(rowErrors))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"saved":  saved,
		"errors": rowErrors,
	})
}
