package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medonrent/config"
	"medonrent/database"
	counterRepoPkg "medonrent/database/repository/counter"
	deviceRepoPkg "medonrent/database/repository/device"
	patientRepoPkg "medonrent/database/repository/patient"
	rentsessionRepoPkg "medonrent/database/repository/rentsession"
	"medonrent/handlers"
	"medonrent/middleware"
	"medonrent/routes"
	"medonrent/services/dashboard"
	"medonrent/services/device"
	"medonrent/services/invoice"
	"medonrent/services/patient"
	"medonrent/services/rentsession"
	"medonrent/services/sequence"
	"medonrent/services/storage"
	"medonrent/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageService, err := storage.New()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	counterRepo := counterRepoPkg.NewMongoCounterRepo()
	sessionRepo := rentsessionRepoPkg.NewMongoRentSessionRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	deviceRepo := deviceRepoPkg.NewMongoDeviceRepo()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer indexCancel()
	if err := counterRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure counter indexes: %v", err)
	}
	if err := sessionRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure rent session indexes: %v", err)
	}
	if err := patientRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure patient indexes: %v", err)
	}
	if err := deviceRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure device indexes: %v", err)
	}

	// services.
	seqAllocator := &sequence.DefaultAllocator{Repo: counterRepo}

	sessionService := &rentsession.DefaultRentSessionService{
		Repo:        sessionRepo,
		PatientRepo: patientRepo,
		DeviceRepo:  deviceRepo,
		Seq:         seqAllocator,
	}
	patientService := &patient.DefaultPatientService{
		Repo: patientRepo,
		Seq:  seqAllocator,
	}
	deviceService := &device.DefaultDeviceService{
		Repo: deviceRepo,
		Seq:  seqAllocator,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		SessionRepo: sessionRepo,
		PatientRepo: patientRepo,
		DeviceRepo:  deviceRepo,
		Cache:       utils.GetCacheClient(),
	}
	invoiceService := &invoice.DefaultInvoiceService{
		SessionRepo: sessionRepo,
		PatientRepo: patientRepo,
		Storage:     storageService,
		Renderer:    invoice.TextRenderer{},
	}

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		RentSession: handlers.NewRentSessionHandler(sessionService, storageService, invoiceService),
		Patient:     handlers.NewPatientHandler(patientService),
		Device:      handlers.NewDeviceHandler(deviceService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Upload:      handlers.NewUploadHandler(storageService, sessionRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

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
