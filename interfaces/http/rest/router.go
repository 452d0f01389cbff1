package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"paper-backend/application/services"
	"paper-backend/infrastructure/config"
	"paper-backend/interfaces/http/rest/handlers"
	"paper-backend/interfaces/http/rest/middleware"
	"paper-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg           *config.Config
	folderService *services.FolderService
	jwtValidator  *auth.JWTValidator
	logger        *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	folderService *services.FolderService,
	jwtValidator *auth.JWTValidator,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:           cfg,
		folderService: folderService,
		jwtValidator:  jwtValidator,
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)

	// API routes
	router.Route("/api/v1", func(r chi.Router) {
		ipLimiter := auth.NewIPRateLimiter(rt.cfg.IPRateLimit)
		userLimiter := auth.NewUserRateLimiter(rt.cfg.UserRateLimit)
		r.Use(middleware.Authenticate(rt.jwtValidator, ipLimiter, userLimiter, rt.logger))

		// Folder endpoints
		r.Route("/folders", func(r chi.Router) {
			folderHandler := handlers.NewFolderHandler(rt.folderService, rt.logger)
			r.Post("/", folderHandler.CreateFolder)
			r.Get("/", folderHandler.ListFolders)
			r.Get("/{folderID}", folderHandler.GetFolder)
			r.Put("/{folderID}", folderHandler.UpdateFolder)
			r.Delete("/{folderID}", folderHandler.DeleteFolder)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
