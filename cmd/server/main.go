package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "hospitaldesk-backend/internal/api/http"
	"hospitaldesk-backend/internal/config"
	"hospitaldesk-backend/internal/logger"
	"hospitaldesk-backend/internal/repository/postgres"
	"hospitaldesk-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hospitaldesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	stockSvc := service.NewStockService(store.MedicationRepository)
	roomSvc := service.NewRoomService(store.RoomRepository)
	prescriptionSvc := service.NewPrescriptionService(
		store.PrescriptionRepository,
		store.MedicationRepository,
		store.PatientRepository,
		store.DoctorRepository,
	)
	staySvc := service.NewStayService(
		store.StayRepository,
		store.PatientRepository,
		store.RoomRepository,
	)
	billingSvc := service.NewBillingService(store.BillingRepository)
	transactionSvc := service.NewTransactionService(store.TransactionRepository, billingSvc)

	router := api.NewRouter(prescriptionSvc, staySvc, billingSvc, transactionSvc, stockSvc, roomSvc)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
