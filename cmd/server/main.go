package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schoolbook/internal/api"
	"schoolbook/internal/payment"
	"schoolbook/internal/record"
	"schoolbook/internal/shared"
)

func main() {
	log.Println("INFO: Starting schoolbook server...")

	shared.LoadEnv("")

	cfg, err := shared.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Configuration error: %v", err)
	}

	var store record.Store
	switch cfg.StoreBackend {
	case "memory":
		log.Println("INFO: Using in-memory record store")
		store = record.NewMemStore()
	default:
		client, db, err := shared.ConnectMongoDB(&cfg.Mongo)
		if err != nil {
			log.Fatalf("FATAL: %v", err)
		}
		defer shared.DisconnectMongoDB(client)

		mongoStore := record.NewMongoStore(db)
		indexCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		if err := mongoStore.EnsureIndexes(indexCtx); err != nil {
			cancel()
			log.Fatalf("FATAL: %v", err)
		}
		cancel()
		store = mongoStore
	}

	records := record.NewService(store)
	sessions := payment.NewStripeCreator(cfg.Payment)

	router := api.NewRouter(api.Deps{
		Records:        records,
		Sessions:       sessions,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("INFO: Server listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("FATAL: HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("INFO: Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("WARNING: Shutdown error: %v", err)
	}

	log.Println("INFO: Server stopped.")
}
