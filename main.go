package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pension-backend/config"
	"pension-backend/controllers"
	"pension-backend/routes"
	"pension-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	var logger *zap.Logger
	if cfg.App.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	logger.Info("database connected, schema migrated")

	// Services
	catalogService := services.NewCatalogService(db)
	availabilityService := services.NewAvailabilityService(db, catalogService)
	pricingService, err := services.NewPricingService(catalogService, cfg.Pricing)
	if err != nil {
		logger.Fatal("pricing config invalid", zap.Error(err))
	}
	bookingService := services.NewBookingService(db, availabilityService, pricingService, catalogService, logger)
	reservationService := services.NewReservationService(db)
	invoiceService := services.NewInvoiceService(db)
	guestService := services.NewGuestService(db)

	// Controllers
	router := routes.SetupRouter(
		controllers.NewAvailabilityController(availabilityService),
		controllers.NewPricingController(pricingService),
		controllers.NewBookingController(bookingService),
		controllers.NewCatalogController(catalogService),
		controllers.NewReservationController(reservationService),
		controllers.NewInvoiceController(invoiceService),
		controllers.NewGuestController(guestService),
		logger,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal, then shut down with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
