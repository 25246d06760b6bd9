package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookAppointmentHandler "github.com/cashforcars/CFC-AppointmentService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/cashforcars/CFC-AppointmentService/internal/api/handlers/cancel_appointment"
	getAvailabilityHandler "github.com/cashforcars/CFC-AppointmentService/internal/api/handlers/get_availability"
	getBranchDetailHandler "github.com/cashforcars/CFC-AppointmentService/internal/api/handlers/get_branch_detail"
	getCandidateDatesHandler "github.com/cashforcars/CFC-AppointmentService/internal/api/handlers/get_candidate_dates"
	getSlotTimesHandler "github.com/cashforcars/CFC-AppointmentService/internal/api/handlers/get_slot_times"
	"github.com/cashforcars/CFC-AppointmentService/internal/api/middleware"
	"github.com/cashforcars/CFC-AppointmentService/internal/config"
	intentRepo "github.com/cashforcars/CFC-AppointmentService/internal/infra/storage/intent"
	authServiceClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/authservice"
	branchServiceClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
	journeyServiceClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/journeyservice"
	"github.com/cashforcars/CFC-AppointmentService/internal/session"
	bookAppointmentUC "github.com/cashforcars/CFC-AppointmentService/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/cashforcars/CFC-AppointmentService/internal/usecase/cancel_appointment"
	getBranchDetailUC "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_branch_detail"
	getCalendarUC "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_calendar"
	getCandidateDatesUC "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_candidate_dates"
	getSlotTimesUC "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_slot_times"
	"github.com/cashforcars/CFC-AppointmentService/pkg/logger"
	"github.com/cashforcars/CFC-AppointmentService/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CFC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Database for booking intents
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Upstream clients share one bearer-token session
	tokenSession := session.New()
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		cfg.AuthService.Username,
		cfg.AuthService.Password,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	branchClient := branchServiceClient.NewClient(
		cfg.BranchService.URL,
		time.Duration(cfg.BranchService.Timeout)*time.Second,
		tokenSession,
		authClient,
		metricsCollector,
		log,
	)
	journeyClient := journeyServiceClient.NewClient(
		cfg.JourneyService.URL,
		time.Duration(cfg.JourneyService.Timeout)*time.Second,
		tokenSession,
		authClient,
		metricsCollector,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s, BranchService=%s, JourneyService=%s)",
		cfg.AuthService.URL, cfg.BranchService.URL, cfg.JourneyService.URL)

	intentRepository := intentRepo.NewRepository(db)

	// Use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(branchClient, log)
	getCandidateDatesUseCase := getCandidateDatesUC.NewUseCase(log)
	getSlotTimesUseCase := getSlotTimesUC.NewUseCase(branchClient, log)
	getBranchDetailUseCase := getBranchDetailUC.NewUseCase(branchClient, log)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(intentRepository, branchClient, journeyClient, log)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(intentRepository, journeyClient, log)

	// Handlers
	getAvailability := getAvailabilityHandler.NewHandler(getCalendarUseCase, log)
	getCandidateDates := getCandidateDatesHandler.NewHandler(getCandidateDatesUseCase, log)
	getSlotTimes := getSlotTimesHandler.NewHandler(getSlotTimesUseCase, log)
	getBranchDetail := getBranchDetailHandler.NewHandler(getBranchDetailUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public read routes
	api.HandleFunc("/appointments/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/dates", getCandidateDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/times", getSlotTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/branches/{branchId}", getBranchDetail.Handle).Methods(http.MethodGet)

	// Mutating routes require the widget's visitor header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{journeyId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
