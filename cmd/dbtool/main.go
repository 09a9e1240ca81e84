package main

import (
	"context"
	"fleet-route-service/internal/adapters/cache"
	"fleet-route-service/internal/platform/db"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres segment cache schema.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Initializing segment cache schema...")
	if err := cache.InitSchema(ctx, pg); err != nil {
		log.Fatal(err)
	}
	log.Println("Done")
}
