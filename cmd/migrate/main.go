package main

import (
	"database/sql"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден")
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN не задан")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Не удалось открыть базу данных: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия DB: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatalf("База данных не отвечает: %v", err)
	}
	log.Println("подключение успешно")

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("Не удалось создать драйвер миграции: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://./migrations", "postgres", driver)
	if err != nil {
		log.Fatalf("Не удалось инициализировать миграцию: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("миграция пошла не по плану: %v", err)
	}
	log.Println("миграция прошла успешно")
}
