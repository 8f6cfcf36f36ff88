// Наполняет каталог тестовыми данными для локальной разработки.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"storefront/internal/db"
	"storefront/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"
)

var categories = []models.Category{
	{NameRu: "Диваны", NameKy: "Дивандар", Slug: "divany"},
	{NameRu: "Кровати", NameKy: "Керебеттер", Slug: "krovati"},
	{NameRu: "Столы", NameKy: "Столдор", Slug: "stoly"},
	{NameRu: "Шкафы", NameKy: "Шкафтар", Slug: "shkafy"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден")
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN не задан")
	}

	dbConn, err := db.NewPostgresDB(dsn)
	if err != nil {
		log.Fatal("Не удалось подключиться к базе данных:", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			log.Printf("Ошибка закрытия DB: %v", err)
		}
	}()

	gofakeit.Seed(time.Now().UnixNano())

	log.Println("Наполняем каталог...")

	for i := range categories {
		if err := dbConn.SaveCategory(&categories[i]); err != nil {
			log.Fatalf("Не удалось сохранить категорию %s: %v", categories[i].NameRu, err)
		}
	}

	total := 0
	for _, category := range categories {
		for i := 0; i < 10; i++ {
			name := gofakeit.ProductName()
			product := models.Product{
				NameRu:      name,
				NameKy:      name,
				Slug:        fmt.Sprintf("%s-%s", category.Slug, gofakeit.UUID()[:8]),
				Description: gofakeit.Sentence(10),
				Price:       float64(gofakeit.Number(5000, 150000)),
				CategoryID:  category.ID,
				Images: []models.ProductImage{
					{URL: gofakeit.ImageURL(800, 600)},
				},
			}
			if err := dbConn.SaveProduct(&product); err != nil {
				log.Printf("Не удалось сохранить товар %s: %v", product.NameRu, err)
				continue
			}
			total++
		}
	}

	plans := []models.InstallmentPlan{
		{Months: "3", Percent: 0},
		{Months: "6", Percent: 5},
		{Months: "12", Percent: 12},
	}
	if err := dbConn.SaveInstallmentPlans(plans); err != nil {
		log.Fatalf("Не удалось сохранить настройки рассрочки: %v", err)
	}

	log.Printf("Готово: %d категорий, %d товаров", len(categories), total)
}
