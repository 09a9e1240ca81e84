package main

import (
	"context"
	"database/sql"
	"fleet-route-service/internal/adapters/cache"
	"fleet-route-service/internal/adapters/directions"
	"fleet-route-service/internal/api"
	"fleet-route-service/internal/catalog"
	"fleet-route-service/internal/config"
	"fleet-route-service/internal/platform/db"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (segment cache, directions) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	apiKey := os.Getenv("MAPS_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("MAPS_API_KEY is required")
	}

	provider, err := directions.NewGoogleDirectionsProvider(apiKey)
	if err != nil {
		log.Fatal(err)
	}

	segmentCache, closeCache, err := openSegmentCache()
	if err != nil {
		log.Fatal(err)
	}
	if closeCache != nil {
		defer closeCache()
	}

	registry := catalog.NewRegistry(catalog.Locations())
	operational := catalog.OperationalRoutes()
	preferred := catalog.PreferredRoutes()

	aggregator := services.NewSegmentAggregator(registry, provider, segmentCache)
	if n, err := strconv.Atoi(config.Get("MAX_CONCURRENT_RESOLVES", "5")); err == nil {
		aggregator.SetMaxConcurrent(n)
	}

	store := services.NewSegmentStore(aggregator, operational)
	router := api.NewRouter(registry, aggregator, store, preferred, operational)

	// Timeouts are tuned for cold-cache segment resolution (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openSegmentCache builds the configured cache backend, or none.
// CACHE_BACKEND: postgres | sqlite | redis | none (default sqlite).
func openSegmentCache() (ports.SegmentCache, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch backend := config.Get("CACHE_BACKEND", "sqlite"); backend {
	case "none":
		return nil, nil, nil

	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for the postgres cache backend")
		}
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewSQLSegmentCache(pg), func() { pg.Close() }, nil

	case "sqlite":
		path := config.Get("SQLITE_PATH", "data/segments.db")
		sq, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite database %q: %w", path, err)
		}
		if err := sq.Ping(); err != nil {
			sq.Close()
			return nil, nil, fmt.Errorf("verify sqlite connection to %q: %w", path, err)
		}
		if err := cache.InitSqliteSchema(ctx, sq); err != nil {
			sq.Close()
			return nil, nil, err
		}
		return cache.NewSqliteSegmentCache(sq), func() { sq.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.Get("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("verify redis connection: %w", err)
		}
		ttl, _ := time.ParseDuration(config.Get("SEGMENT_CACHE_TTL", "24h"))
		return cache.NewRedisSegmentCache(client, ttl), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown CACHE_BACKEND %q", backend)
	}
}
