package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/MatyAlts/synapsse-storefront/internal/cart"
	"github.com/MatyAlts/synapsse-storefront/internal/cartsync"
	"github.com/MatyAlts/synapsse-storefront/internal/catalog"
	"github.com/MatyAlts/synapsse-storefront/internal/checkout"
	"github.com/MatyAlts/synapsse-storefront/internal/coupon"
	"github.com/MatyAlts/synapsse-storefront/internal/httpapi"
	"github.com/MatyAlts/synapsse-storefront/internal/remote"
	"github.com/MatyAlts/synapsse-storefront/internal/session"
)

type Config struct {
	HTTPPort        string
	DBPath          string
	MigrationsPath  string
	BackendURL      string
	AppURL          string
	RedisAddr       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./storefront.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./internal/catalog/migrations"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:8081"),
		AppURL:          getEnv("APP_URL", "http://localhost:3000"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	repo, err := catalog.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer repo.Close()

	if err := repo.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hc := remote.NewHTTPClient(cfg.RequestTimeout)
	cartClient := remote.NewCartClient(cfg.BackendURL, hc)
	couponClient := remote.NewCouponClient(cfg.BackendURL, hc)
	profileClient := remote.NewProfileClient(cfg.BackendURL, hc)
	paymentClient := remote.NewPaymentClient(cfg.BackendURL, hc)

	store := cart.NewStore()
	syncClient := cartsync.NewClient(store, cartClient)
	validator := coupon.NewValidator(couponClient)
	sessions := checkout.NewRegistry(profileClient)

	// redis keeps applied coupons across restarts; without it they
	// only live as long as the process
	var coupons session.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		coupons = session.NewRedisStore(rdb)
		log.Printf("coupon store: redis at %s", cfg.RedisAddr)
	} else {
		coupons = session.NewMemoryStore()
		log.Println("coupon store: in-memory")
	}

	api := httpapi.NewAPI(repo, store, syncClient, validator, sessions, coupons, paymentClient, cfg.AppURL)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/api/v1", api.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
