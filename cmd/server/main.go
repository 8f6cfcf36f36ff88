package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"storefront/internal/admin"
	"storefront/internal/bus"
	"storefront/internal/clientstore"
	"storefront/internal/db"
	"storefront/internal/handlers"
	"storefront/internal/images"
	"storefront/internal/interfaces"
	"storefront/internal/metrics"
	"storefront/internal/notify"
	"storefront/internal/orders"
	"storefront/internal/tracing"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден")
	}

	postgresDSN := os.Getenv("POSTGRES_DSN")
	if postgresDSN == "" {
		log.Fatal("POSTGRES_DSN не задан")
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("ADMIN_PASSWORD не задан")
	}
	adminSecret := os.Getenv("ADMIN_SECRET")
	if adminSecret == "" {
		log.Fatal("ADMIN_SECRET не задан")
	}

	metrics.InitMetrics()

	tp, err := tracing.InitTracer("storefront")
	if err != nil {
		log.Printf("трейсинг не поднялся, работаем без него: %v", err)
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Printf("Ошибка остановки трейсинга: %v", err)
			}
		}()
	}

	dbConn, err := db.NewPostgresDB(postgresDSN)
	if err != nil {
		log.Fatal("Не удалось подключиться к базе данных:", err)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			log.Printf("Ошибка закрытия DB: %v", err)
		}
	}()

	// уведомления о заказах в телеграм
	var notifier interfaces.Notifier
	token := os.Getenv("TELEGRAM_TOKEN")
	chatID, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if token == "" || chatID == 0 {
		log.Fatal("TELEGRAM_TOKEN и TELEGRAM_CHAT_ID не заданы")
	}
	notifier, err = notify.NewTelegramNotifier(token, chatID)
	if err != nil {
		log.Fatalf("Не удалось подключиться к телеграму: %v", err)
	}

	// хранилище изображений опционально: без него недоступна только загрузка
	var uploader interfaces.ImageUploader
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		uploader, err = images.NewCloudinaryUploader(url)
		if err != nil {
			log.Fatalf("Не удалось подключиться к Cloudinary: %v", err)
		}
	} else {
		log.Println("CLOUDINARY_URL не задан, загрузка изображений отключена")
	}

	events := bus.New()
	sessions := clientstore.NewSessionStore(24*time.Hour, 10000)
	auth := admin.NewAuth(adminPassword, adminSecret)
	submitter := orders.NewSubmitter(notifier, dbConn, events)

	handler := handlers.NewHandler(dbConn, sessions, submitter, events, auth, uploader, tracing.GetTracer("http"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Запуск сервера на :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Корректное завершение по SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("отключение сервера...")

	ctxTimeout, cancelTimeout := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelTimeout()
	if err := srv.Shutdown(ctxTimeout); err != nil {
		log.Fatalf("Сервер принудительно отключен: %v", err)
	}
}
