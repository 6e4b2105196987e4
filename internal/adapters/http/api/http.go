// Package api declares HTTP contracts, the middleware pipeline, and route
// registration for the showcase service.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"showcase/internal/domain/model"
	"showcase/pkg/logger"
	"showcase/pkg/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store provides the read operations handlers depend on. Keeping the
// interface local decouples the handler layer from the repository package.
type Store interface {
	Projects(ctx context.Context) ([]model.Project, error)
	Students(ctx context.Context) ([]model.Student, error)
}

// Notifier accepts validated contact messages for out-of-band handling.
type Notifier interface {
	Dispatch(ctx context.Context, msg model.ContactMessage) string
}

// Limiter decides whether a request from a client address may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration)
}

// Compression level passed to chi's Compress middleware.
const compressionLevel = 5

// Server wires HTTP routes and the middleware chain for the business API.
type Server struct {
	store    Store
	notifier Notifier
	limiter  Limiter
	log      logger.Logger

	environment    string
	version        string
	frontendOrigin string
	maxBodyBytes   int64
	development    bool

	healthHandler   *HealthHandler
	indexHandler    *IndexHandler
	projectsHandler *ProjectsHandler
	studentsHandler *StudentsHandler
	contactHandler  *ContactHandler
	notFoundHandler *NotFoundHandler
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithEnvironment sets the environment label reported by /api/health.
func WithEnvironment(env string) Option {
	return func(s *Server) {
		if env != "" {
			s.environment = env
		}
	}
}

// WithVersion sets the version string reported by /api.
func WithVersion(version string) Option {
	return func(s *Server) {
		if version != "" {
			s.version = version
		}
	}
}

// WithFrontendOrigin sets the single origin the CORS policy allows.
func WithFrontendOrigin(origin string) Option {
	return func(s *Server) {
		if origin != "" {
			s.frontendOrigin = origin
		}
	}
}

// WithMaxBodyBytes caps the size of parsed request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// WithDevelopmentMode gates raw error detail in 500 responses.
func WithDevelopmentMode(enabled bool) Option {
	return func(s *Server) {
		s.development = enabled
	}
}

// NewServer creates an API server with all handlers.
func NewServer(store Store, notifier Notifier, limiter Limiter, log logger.Logger, opts ...Option) *Server {
	s := &Server{
		store:          store,
		notifier:       notifier,
		limiter:        limiter,
		log:            log,
		environment:    "development",
		version:        "1.0.0",
		frontendOrigin: "http://localhost:3000",
		maxBodyBytes:   1 << 20,
		development:    true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler(s.environment)
	s.indexHandler = NewIndexHandler(s.version)
	s.projectsHandler = NewProjectsHandler(s.store)
	s.studentsHandler = NewStudentsHandler(s.store)
	s.contactHandler = NewContactHandler(s.notifier)
	s.notFoundHandler = NewNotFoundHandler()
	return s
}

// Register applies the middleware pipeline and attaches all API routes to r.
// Stage order (outermost first): recovery, request ID, request logging,
// real IP, security headers, compression, CORS, body ceiling; the /api
// subtree additionally applies rate limiting and per-endpoint metrics.
// Register must run before any other route registration on r because chi
// rejects middleware added after routes.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Use(s.recovery)
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(chimw.RealIP)
	r.Use(securityHeaders)
	r.Use(chimw.Compress(compressionLevel))
	r.Use(s.cors)
	r.Use(s.maxBody)

	r.NotFound(s.notFoundHandler.HandleNotFound)
	r.MethodNotAllowed(s.notFoundHandler.HandleNotFound)

	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Get("/", MetricsMiddleware(s.indexHandler.HandleIndex, "index"))
		r.Get("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
		r.Get("/projects", MetricsMiddleware(s.projectsHandler.HandleList, "projects"))
		r.Get("/students", MetricsMiddleware(s.studentsHandler.HandleList, "students"))
		r.Post("/contact", MetricsMiddleware(s.contactHandler.HandleSubmit, "contact"))
	})
}

// availableRoutes is the fixed endpoint list reported by /api and by the
// 404 fallback.
var availableRoutes = []string{
	"GET /api",
	"GET /api/health",
	"GET /api/projects",
	"GET /api/students",
	"POST /api/contact",
}

// messageResponse is the generic success/message envelope.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// listResponse wraps collection payloads with a count matching len(Data).
type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Success: false, Message: message})
}
