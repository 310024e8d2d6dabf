package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"outpass-backend/internal/auth"
	"outpass-backend/internal/cache"
	"outpass-backend/internal/config"
	"outpass-backend/internal/database"
	"outpass-backend/internal/db"
	"outpass-backend/internal/handlers"
	"outpass-backend/internal/health"
	h "outpass-backend/internal/http"
	"outpass-backend/internal/mailer"
	"outpass-backend/internal/middleware"
	"outpass-backend/internal/monitoring"
	"outpass-backend/internal/repositories"
	"outpass-backend/internal/services"
	"outpass-backend/migrations"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (dashboard lists will hit the database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	// This automatically creates all required tables on startup
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start ops dashboard server in background
	opsServer := monitoring.NewServer(pool, cfg.Monitoring.Port)
	go opsServer.Start()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	studentRepo := repositories.NewStudentRepository(pool)
	homeVisitRepo := repositories.NewHomeVisitRepository(pool)
	outingRepo := repositories.NewOutingRepository(pool)
	notificationLogRepo := repositories.NewNotificationLogRepository(pool)

	// Use SendGrid for production, fallback to console mailer if API key not set
	var guardianMailer mailer.Mailer
	if cfg.Mail.SendGridKey != "" {
		log.Println("Using SendGrid for guardian email delivery")
		guardianMailer = mailer.NewSendGridMailer(cfg.Mail.SendGridKey, cfg.Mail.FromName, cfg.Mail.FromEmail)
	} else {
		log.Println("WARNING: SENDGRID_API_KEY not set, guardian emails will only print to logs")
		guardianMailer = mailer.NewConsoleMailer()
	}

	// Initialize services
	notificationService := services.NewNotificationService(guardianMailer)
	notificationService.SetLogRepository(notificationLogRepo)

	studentService := services.NewStudentService(studentRepo)
	outpassService := services.NewOutpassService(homeVisitRepo, outingRepo, studentRepo, notificationService)
	outpassService.SetActivityPublisher(opsServer)
	slipService := services.NewSlipService()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, jwtManager)
	studentHandler := handlers.NewStudentHandler(studentService)
	homeVisitHandler := handlers.NewHomeVisitHandler(outpassService, slipService)
	outingHandler := handlers.NewOutingHandler(outpassService, slipService)
	notificationLogHandler := handlers.NewNotificationLogHandler(notificationLogRepo)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Create router
	router := h.NewRouter(authHandler, studentHandler, homeVisitHandler, outingHandler, notificationLogHandler, healthHandler, authMiddleware)

	// Wrap with panic recovery and metrics middleware
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
