// File: salonflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"salonflow/config"
	"salonflow/cron"
	"salonflow/database"
	apptRepoPkg "salonflow/database/repository/appointment"
	barberRepoPkg "salonflow/database/repository/barber"
	blockRepoPkg "salonflow/database/repository/block"
	catalogRepoPkg "salonflow/database/repository/catalog"
	clientRepoPkg "salonflow/database/repository/client"
	saleRepoPkg "salonflow/database/repository/sale"
	staffRepoPkg "salonflow/database/repository/staff"
	"salonflow/handlers"
	"salonflow/middleware"
	"salonflow/routes"
	"salonflow/services/appointment"
	"salonflow/services/availability"
	"salonflow/services/checkout"
	"salonflow/services/report"
	"salonflow/services/salon"
	"salonflow/services/stats"
	"salonflow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	barberRepo := barberRepoPkg.NewMongoBarberRepo()
	blockRepo := blockRepoPkg.NewMongoBlockRepo()
	apptRepo := apptRepoPkg.NewMongoAppointmentRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	saleRepo := saleRepoPkg.NewMongoSaleRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		BarberRepo:  barberRepo,
		BlockRepo:   blockRepo,
		ApptRepo:    apptRepo,
		Granularity: config.SlotGranularity(),
		Location:    config.SalonLocation(),
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:         apptRepo,
		Catalog:      catalogRepo,
		Availability: availabilityService,
	}

	salonService := &salon.DefaultSalonService{
		Barbers: barberRepo,
		Blocks:  blockRepo,
		Catalog: catalogRepo,
	}

	checkoutService := &checkout.DefaultCheckoutService{
		Cache:        utils.GetCartCacheClient(),
		Sales:        saleRepo,
		Appointments: appointmentService,
		Currency:     config.AppConfig.Currency,
	}

	statsService := &stats.DefaultStatsService{
		Availability: availabilityService,
		Appointments: apptRepo,
		Sales:        saleRepo,
		Granularity:  config.SlotGranularity(),
		Location:     config.SalonLocation(),
	}

	reportService := report.NewDefaultReportService(statsService, apptRepo, clientRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo:    staffRepo,
		Auth:         &handlers.AuthHandler{Staff: staffRepo, Logger: logger},
		Availability: &handlers.AvailabilityHandler{Availability: availabilityService, Catalog: catalogRepo, Logger: logger},
		Appointment:  &handlers.AppointmentHandler{Appointments: appointmentService, Logger: logger},
		Salon:        &handlers.SalonHandler{Salon: salonService, Logger: logger},
		Checkout:     &handlers.CheckoutHandler{Service: checkoutService, Logger: logger},
		Stats:        &handlers.StatsHandler{Stats: statsService, Report: reportService, Logger: logger},
		Client:       &handlers.ClientHandler{Clients: clientRepo, Logger: logger},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for the nightly report email.
	cron.InitReportWorker(reportService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
