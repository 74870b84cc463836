package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"property-value-service/internal/adapters/artifacts"
	"property-value-service/internal/adapters/cache"
	"property-value-service/internal/adapters/history"
	"property-value-service/internal/adapters/mlservice"
	"property-value-service/internal/api"
	"property-value-service/internal/config"
	"property-value-service/internal/domain"
	"property-value-service/internal/platform/db"
	"property-value-service/internal/ports"
	"property-value-service/internal/services"
)

// main is the application composition root.
// It loads the frozen model artifacts, wires optional adapters (Postgres
// history, Redis cache, remote model) behind ports, and starts the HTTP
// server. A missing artifact halts the process before serving any request.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	encoders, linearModel, err := artifacts.Load(cfg.ArtifactsDir)
	if err != nil {
		log.Fatal(err)
	}

	catalog := domain.NewGeographyCatalog()

	// Surface catalog/vocabulary drift on every boot instead of waiting for
	// users to hit advisories.
	coverage := services.CoverageReport(catalog, encoders.Locality)
	log.Printf(
		"locality coverage: supported=%d unsupported=%d orphaned=%d",
		len(coverage.Supported), len(coverage.Unsupported), len(coverage.Orphaned),
	)
	if len(coverage.Unsupported) > 0 {
		log.Printf("localities without model coverage (advisory path): %v", coverage.Unsupported)
	}
	if len(coverage.Orphaned) > 0 {
		log.Printf("encoder vocabulary entries missing from catalog: %v", coverage.Orphaned)
	}

	var model ports.Predictor = linearModel
	if cfg.MLServiceURL != "" {
		log.Printf("using remote model service url=%s", cfg.MLServiceURL)
		model = mlservice.NewHTTPPredictor(cfg.MLServiceURL)
	}

	var estimateCache ports.EstimateCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("verify redis connection to %q: %v", cfg.RedisAddr, err)
		}
		estimateCache = cache.NewRedisEstimateCache(client, cfg.CacheTTL)
		log.Printf("estimate cache enabled addr=%s ttl=%s", cfg.RedisAddr, cfg.CacheTTL)
	}

	var recorder ports.EstimateRecorder
	if cfg.SaveEstimates {
		if cfg.DatabaseURL == "" {
			log.Fatal("SAVE_ESTIMATES=true requires DATABASE_URL")
		}

		pg, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := history.InitSchema(pg); err != nil {
			log.Fatal(err)
		}
		recorder = history.NewSQLEstimateRecorder(pg)
		log.Println("estimate history recording enabled")
	}

	router := api.NewRouter(api.RouterDeps{
		Catalog:  catalog,
		Encoders: encoders,
		Model:    model,
		Cache:    estimateCache,
		Recorder: recorder,
	})

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
