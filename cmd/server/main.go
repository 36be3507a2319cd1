package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shefazol/ordering/internal/adapter/handler"
	"github.com/shefazol/ordering/internal/adapter/notify"
	"github.com/shefazol/ordering/internal/adapter/places"
	"github.com/shefazol/ordering/internal/adapter/storage"
	"github.com/shefazol/ordering/internal/core/service"
)

const (
	httpAddr  = ":8080"
	dbPath    = "shefazol.db"
	outDir    = "orders"
	queueSize = 64
	userAgent = "shefazol-ordering/1.0"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Record store
	store, err := storage.NewSQLiteAdapter(envOr("SHEFAZOL_DB", dbPath))
	if err != nil {
		log.Fatalf("failed to open record store: %v", err)
	}
	log.Println("record store ready")

	// External collaborators
	resolver := places.NewHTTPResolver(userAgent)
	emailClient := notify.NewEmailClient(
		envOr("EMAILJS_SERVICE_ID", "default_service"),
		os.Getenv("EMAILJS_USER_ID"),
	)
	dispatcher := notify.NewDispatcher(emailClient, notify.BrowserOpener{})
	renderer := notify.NewPDFRenderer(envOr("SHEFAZOL_OUT_DIR", outDir), os.Getenv("SHEFAZOL_PDF_FONT"))

	// Core service and background dispatch worker
	orderService := service.NewOrderService(store, resolver, dispatcher, renderer, queueSize)

	var g errgroup.Group
	g.Go(func() error {
		orderService.RunDispatcher(ctx)
		return nil
	})
	log.Println("notification dispatcher started")

	// HTTP server
	httpHandler := handler.NewHTTPHandler(orderService)
	mux := http.NewServeMux()
	httpHandler.Register(mux)

	httpServer := &http.Server{
		Addr:    envOr("SHEFAZOL_ADDR", httpAddr),
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Let the dispatcher drain queued notifications before closing the store.
	orderService.Close()
	if err := g.Wait(); err != nil {
		log.Printf("dispatcher error: %v", err)
	}
	log.Println("dispatcher stopped")

	store.Close()
	log.Println("record store closed")
}
