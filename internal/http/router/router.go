package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bsimkins11/project-agent-admin/internal/auth"
	"github.com/bsimkins11/project-agent-admin/internal/backend"
	"github.com/bsimkins11/project-agent-admin/internal/config"
	"github.com/bsimkins11/project-agent-admin/internal/database"
	"github.com/bsimkins11/project-agent-admin/internal/domain"
	"github.com/bsimkins11/project-agent-admin/internal/http/handler"
	"github.com/bsimkins11/project-agent-admin/internal/http/middleware"
	"github.com/bsimkins11/project-agent-admin/internal/metrics"

	_ "github.com/bsimkins11/project-agent-admin/docs" // Import generated swagger docs
)

type Router struct {
	cfg                   *config.Config
	logger                *zap.Logger
	db                    *gorm.DB
	backendClient         *backend.Client
	consoleMetrics        *metrics.ConsoleMetrics
	authMiddleware        *auth.Middleware
	rateLimiter           *middleware.RateLimiter
	auditMiddleware       *middleware.AuditMiddleware
	inventoryHandler      *handler.InventoryHandler
	documentHandler       *handler.DocumentHandler
	classificationHandler *handler.ClassificationHandler
	ingestHandler         *handler.IngestHandler
	driveHandler          *handler.DriveHandler
	clientHandler         *handler.ClientHandler
	sessionHandler        *handler.SessionHandler
	auditHandler          *handler.AuditHandler
	authHandler           *handler.AuthHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	backendClient *backend.Client,
	consoleMetrics *metrics.ConsoleMetrics,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	auditMiddleware *middleware.AuditMiddleware,
	inventoryHandler *handler.InventoryHandler,
	documentHandler *handler.DocumentHandler,
	classificationHandler *handler.ClassificationHandler,
	ingestHandler *handler.IngestHandler,
	driveHandler *handler.DriveHandler,
	clientHandler *handler.ClientHandler,
	sessionHandler *handler.SessionHandler,
	auditHandler *handler.AuditHandler,
	authHandler *handler.AuthHandler,
) *Router {
	return &Router{
		cfg:                   cfg,
		logger:                logger,
		db:                    db,
		backendClient:         backendClient,
		consoleMetrics:        consoleMetrics,
		authMiddleware:        authMiddleware,
		rateLimiter:           rateLimiter,
		auditMiddleware:       auditMiddleware,
		inventoryHandler:      inventoryHandler,
		documentHandler:       documentHandler,
		classificationHandler: classificationHandler,
		ingestHandler:         ingestHandler,
		driveHandler:          driveHandler,
		clientHandler:         clientHandler,
		sessionHandler:        sessionHandler,
		auditHandler:          auditHandler,
		authHandler:           authHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP) // Apply IP-based rate limiting globally
	if rt.consoleMetrics != nil {
		r.Use(func(next http.Handler) http.Handler {
			return rt.consoleMetrics.Middleware(rt.cfg.App.Name, next)
		})
	}

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Backend health check (is the document API reachable)
	r.Get("/health/backend", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := rt.backendClient.Health(r.Context()); err != nil {
			rt.logger.Error("Backend health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "document-api",
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "document-api",
		})
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		// Check local console database
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Console database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		// Check the document API
		if err := rt.backendClient.Health(r.Context()); err != nil {
			checks["backend"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["backend"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		status := "healthy"
		if !allHealthy {
			status = "unhealthy"
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	// Prometheus metrics
	if rt.consoleMetrics != nil {
		r.Handle("/metrics", rt.consoleMetrics.Handler())
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.auditMiddleware.Audit) // Audit all modifications

			// Auth
			r.Get("/auth/me", rt.authHandler.Me)

			// Session (project scope, filters)
			r.Route("/session", func(r chi.Router) {
				r.Get("/", rt.sessionHandler.Get)
				r.Put("/project", rt.sessionHandler.SelectProject)
				r.Delete("/", rt.sessionHandler.Clear)
			})

			// Inventory
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", rt.inventoryHandler.List)
				r.Get("/filters", rt.inventoryHandler.Filters)
				r.Get("/pending", rt.inventoryHandler.Pending)
			})

			// Classification taxonomy
			r.Get("/classification/options", rt.classificationHandler.Options)

			// Per-document workflow. Mutations require a managing role;
			// viewers can only read.
			r.Route("/documents/{id}", func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireRole(domain.RoleAdmin, domain.RoleOperator))

				r.Post("/approve", rt.documentHandler.Approve)
				r.Post("/reject", rt.documentHandler.Reject)
				r.Post("/request-access", rt.documentHandler.RequestAccess)
				r.Post("/grant-access", rt.documentHandler.GrantAccess)
				r.Post("/deny-access", rt.documentHandler.DenyAccess)
				r.Post("/submit-for-processing", rt.documentHandler.SubmitForProcessing)
				r.Post("/process", rt.documentHandler.Process)
				r.Post("/retry", rt.documentHandler.Retry)
				r.Delete("/", rt.documentHandler.Delete)
				r.Patch("/metadata", rt.documentHandler.UpdateMetadata)

				r.Post("/classification", rt.classificationHandler.Assign)
				r.Post("/category", rt.classificationHandler.AssignCategory)

				r.Post("/source-url", rt.ingestHandler.AddSourceURL)
				r.Post("/upload", rt.ingestHandler.UploadSource)
			})

			// Ingestion
			r.Route("/ingest", func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireRole(domain.RoleAdmin, domain.RoleOperator))
				r.Post("/document", rt.ingestHandler.Ingest)
				r.Post("/csv", rt.ingestHandler.IngestCSV)
			})

			// Drive and index analysis
			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireRole(domain.RoleAdmin, domain.RoleOperator))
				r.Post("/drive/sync", rt.driveHandler.Sync)
				r.Post("/drive/search", rt.driveHandler.Search)
				r.Post("/index/analyze", rt.driveHandler.AnalyzeIndex)
				r.Post("/index/request-access", rt.driveHandler.RequestIndexAccess)
			})

			// Client administration (admin only)
			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireAdmin)
				r.Get("/clients", rt.clientHandler.List)
				r.Post("/clients", rt.clientHandler.Create)
				r.Post("/admin/migrate-to-rbac", rt.clientHandler.Migrate)
				r.Get("/audit-logs", rt.auditHandler.List)
			})
		})
	})

	return r
}
