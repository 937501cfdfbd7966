package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flameshop/ecommerce-api/internal/config"
	"github.com/flameshop/ecommerce-api/internal/handlers"
	"github.com/flameshop/ecommerce-api/internal/middleware"
	"github.com/flameshop/ecommerce-api/internal/service"
	"github.com/flameshop/ecommerce-api/internal/store"
	"github.com/flameshop/ecommerce-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Logging.Level)
	slog.SetDefault(log)

	log.Info("starting ecommerce api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.Logging.Level,
	)

	// Connect the document store. The server starts regardless of the
	// outcome; data endpoints fail cleanly and /test reports the state.
	st := store.ConnectMongo(context.Background(), store.MongoConfig{
		URL:            cfg.Database.URL,
		DatabaseName:   cfg.Database.Name,
		ConnectTimeout: cfg.Database.ConnectTimeoutDuration(),
	})
	switch st.Status() {
	case store.StatusConnected:
		log.Info("connected to document store", "database", st.DatabaseName())
	case store.StatusUnavailable:
		log.Warn("document store unavailable, data endpoints will fail", "error", st.StatusDetail())
	default:
		log.Warn("DATABASE_URL not set, data endpoints will fail")
	}

	// Initialize services
	catalogService := service.NewCatalogService(st)
	orderService := service.NewOrderService(st)

	// Initialize handlers
	rootHandler := handlers.NewRootHandler(log)
	diagnosticHandler := handlers.NewDiagnosticHandler(st, cfg.Database.URLConfigured(), cfg.Database.NameConfigured(), log)
	productHandler := handlers.NewProductHandler(catalogService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	schemaHandler := handlers.NewSchemaHandler(log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Get("/", rootHandler.ServeHTTP)
	r.Get("/test", diagnosticHandler.ServeHTTP)
	r.Get("/schema", schemaHandler.ServeHTTP)
	r.Post("/seed", productHandler.Seed)
	r.Get("/products", productHandler.ListProducts)
	r.Post("/products", productHandler.CreateProduct)
	r.Post("/orders", orderHandler.CreateOrder)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
