package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bsimkins11/project-agent-admin/docs"
	"github.com/bsimkins11/project-agent-admin/internal/auth"
	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/bsimkins11/project-agent-admin/internal/database"
	"github.com/bsimkins11/project-agent-admin/internal/http/handler"
	"github.com/bsimkins11/project-agent-admin/internal/http/middleware"
	"github.com/bsimkins11/project-agent-admin/internal/http/router"
	"github.com/bsimkins11/project-agent-admin/internal/jobs"
	"github.com/bsimkins11/project-agent-admin/internal/logger"
	"github.com/bsimkins11/project-agent-admin/internal/metrics"
	"github.com/bsimkins11/project-agent-admin/internal/repository"
	"github.com/bsimkins11/project-agent-admin/internal/service"
	"github.com/bsimkins11/project-agent-admin/internal/storage"
	"go.uber.org/zap"
)

// @title Project Agent Admin Console API
// @version 1.0
// @description Administrative console for the document ingestion workflow: inventory review, classification, approval, Drive sync and tenant management

// @contact.name Transparent Partners
// @contact.email support@transparent.partners

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations
// @Security BearerAuth
// @Security ApiKeyAuth

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "admin-console-staging.transparent.partners"
	case "production":
		docs.SwaggerInfo.Host = "admin-console.transparent.partners"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Connect to the console database
	db, err := database.NewDatabase(&cfg.ConsoleDB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Metrics registry, shared by the HTTP middleware and the backend client
	consoleMetrics := metrics.NewConsoleMetrics(cfg.App.Name)

	// Document API client
	backendClient, err := backend.NewClient(&cfg.Backend, log)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}
	backendClient.SetObserver(consoleMetrics)

	// Initialize upload spool storage
	spool, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	auditLogRepo := repository.NewAuditLogRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	sessionService := service.NewSessionService(sessionRepo, log)
	inventoryService := service.NewInventoryService(backendClient, sessionService, log)
	approvalService := service.NewApprovalService(backendClient, log)
	classificationService := service.NewClassificationService(backendClient, cfg.Taxonomy.CacheTTLDuration(), log)
	ingestService := service.NewIngestService(backendClient, spool, cfg.Storage.MaxUploadSizeBytes(), log)
	driveService := service.NewDriveService(backendClient, log)
	clientService := service.NewClientService(backendClient, log)
	migrationService := service.NewMigrationService(backendClient, &cfg.Migration, log)
	auditLogService := service.NewAuditLogService(auditLogRepo, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)
	auditMiddleware := middleware.NewAuditMiddleware(auditLogService, nil, log)

	// Initialize handlers
	inventoryHandler := handler.NewInventoryHandler(inventoryService, approvalService, consoleMetrics, log)
	documentHandler := handler.NewDocumentHandler(approvalService, consoleMetrics, log)
	classificationHandler := handler.NewClassificationHandler(classificationService, log)
	ingestHandler := handler.NewIngestHandler(ingestService, consoleMetrics, log)
	driveHandler := handler.NewDriveHandler(driveService, log)
	clientHandler := handler.NewClientHandler(clientService, migrationService, log)
	sessionHandler := handler.NewSessionHandler(sessionService, log)
	auditHandler := handler.NewAuditHandler(auditLogService, log)
	authHandler := handler.NewAuthHandler(log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		backendClient,
		consoleMetrics,
		authMiddleware,
		rateLimiter,
		auditMiddleware,
		inventoryHandler,
		documentHandler,
		classificationHandler,
		ingestHandler,
		driveHandler,
		clientHandler,
		sessionHandler,
		auditHandler,
		authHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Taxonomy.RefreshEnabled {
		scheduler = jobs.NewScheduler(log)

		refreshJob := jobs.NewTaxonomyRefreshJob(classificationService, log, cfg.Taxonomy.CacheTTLDuration())
		if err := scheduler.AddJob(jobs.TaxonomyRefreshJobName, cfg.Taxonomy.RefreshCron, refreshJob.Run); err != nil {
			log.Error("Failed to register taxonomy refresh job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with taxonomy refresh job",
				zap.String("cron_expr", cfg.Taxonomy.RefreshCron),
			)
		}
	} else {
		log.Info("Taxonomy background refresh disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
