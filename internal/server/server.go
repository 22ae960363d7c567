package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arpmotors/siteadmin/internal/handler"
	"github.com/arpmotors/siteadmin/internal/server/middleware"
	"github.com/arpmotors/siteadmin/internal/service"
	"github.com/arpmotors/siteadmin/internal/store"
)

// Config holds the HTTP server configuration.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// DefaultConfig returns a Config with sensible production defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8080,
		ShutdownTimeout: 30 * time.Second,
		CORSOrigins:     []string{"*"},
	}
}

// Server is the top-level HTTP server for the site admin backend. It owns
// the Chi router, the content store, and the authentication service.
type Server struct {
	cfg        Config
	router     chi.Router
	store      *store.Store
	authSvc    *service.AuthService
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a new Server, wires up all routes and middleware, and returns
// it ready to listen. Call ListenAndServe to start accepting connections.
func New(cfg Config, st *store.Store, authSvc *service.AuthService, logger *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		store:   st,
		authSvc: authSvc,
		logger:  logger,
	}
	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	// --- Global middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimw.Compress(5))

	// --- Health checks (no auth required) ---
	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	sessionHandler := handler.NewSessionHandler(s.store, s.authSvc)
	contentHandler := handler.NewContentHandler(s.store)
	catalogHandler := handler.NewCatalogHandler(s.store)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", sessionHandler.Login)

		// Public reads: the site frontend fetches content without a token.
		r.Get("/about", contentHandler.GetAbout)
		r.Get("/contact/info", contentHandler.GetContactInfo)
		r.Get("/contact/fields", catalogHandler.ListContactFields)
		r.Get("/footer", contentHandler.GetFooter)
		r.Get("/meta/{pageKey}", contentHandler.GetPageMeta)
		r.Get("/vehicles", catalogHandler.ListVehicles)
		r.Get("/vehicles/{slug}", catalogHandler.GetVehicle)
		r.Get("/gallery", catalogHandler.ListGallery)
		r.Get("/hero/slides", catalogHandler.ListHeroSlides)
		r.Get("/chatbot/options", catalogHandler.ListChatOptions)
		r.Get("/include/features", catalogHandler.ListFeatures)
		r.Get("/include/policies", catalogHandler.ListPolicies)

		// Every mutating endpoint sits behind the bearer token guard.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(s.authSvc))

			r.Get("/me", sessionHandler.Me)
			r.Get("/stats", catalogHandler.GetStats)

			r.Put("/about", contentHandler.UpdateAbout)
			r.Put("/contact/info", contentHandler.UpdateContactInfo)
			r.Put("/footer", contentHandler.UpdateFooter)
			r.Put("/meta/{pageKey}", contentHandler.UpdatePageMeta)

			r.Post("/vehicles", catalogHandler.CreateVehicle)
			r.Put("/vehicles/{slug}", catalogHandler.UpdateVehicle)
			r.Delete("/vehicles/{slug}", catalogHandler.DeleteVehicle)

			r.Post("/gallery", catalogHandler.CreateGalleryItem)
			r.Delete("/gallery/{id}", catalogHandler.DeleteGalleryItem)

			r.Post("/hero/slides", catalogHandler.CreateHeroSlide)
			r.Put("/hero/slides/{id}", catalogHandler.UpdateHeroSlide)
			r.Delete("/hero/slides/{id}", catalogHandler.DeleteHeroSlide)

			r.Put("/chatbot/options/bulk", catalogHandler.ReplaceChatOptions)

			r.Post("/include/features", catalogHandler.CreateFeature)
			r.Delete("/include/features/{id}", catalogHandler.DeleteFeature)
			r.Post("/include/policies", catalogHandler.CreatePolicy)
			r.Delete("/include/policies/{id}", catalogHandler.DeletePolicy)

			r.Post("/contact/fields", catalogHandler.CreateContactField)
			r.Delete("/contact/fields/{id}", catalogHandler.DeleteContactField)
		})
	})

	s.router = r
}

// handleHealthz is a liveness probe. Returns 200 if the process is running.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleReadyz is a readiness probe. Returns 200 when the content database
// is reachable, or 503 otherwise.
func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	httpStatus := http.StatusOK
	if err := s.store.Ping(); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// ListenAndServe starts the HTTP server and blocks until a SIGINT or SIGTERM
// is received. It then performs a graceful shutdown, draining in-flight
// requests before closing the database.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server listen: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutdown signal received, draining connections...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Router returns the underlying Chi router, useful for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ServeHTTP implements http.Handler, delegating to the router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
