// Package server provides the HTTP REST API for the job tracker.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/jobtracker/internal/config"
	"github.com/jonathan/jobtracker/internal/db"
)

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	db           *db.DB
	jwtService   *JWTService
	admin        *config.AdminConfig
	allowOrigin  string
	fetchTimeout time.Duration
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	AllowOrigin  string
	FetchTimeout time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	s := &Server{
		db:           database,
		allowOrigin:  cfg.AllowOrigin,
		fetchTimeout: cfg.FetchTimeout,
	}

	// Authentication is optional: with no AUTH_SECRET all routes stay open.
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	if jwtConfig != nil {
		admin, err := config.NewAdminConfig()
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create admin config: %w", err)
		}
		if admin == nil {
			database.Close()
			return nil, fmt.Errorf("AUTH_SECRET is set but ADMIN_EMAIL/ADMIN_PASSWORD_HASH are not")
		}
		s.jwtService = NewJWTService(jwtConfig)
		s.admin = admin
	}

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the API route table.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Jobs
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("POST /api/jobs", s.protect(s.handleCreateJob))
	mux.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)
	mux.HandleFunc("PATCH /api/jobs/{id}", s.protect(s.handleUpdateJob))
	mux.HandleFunc("DELETE /api/jobs/{id}", s.protect(s.handleDeleteJob))
	mux.HandleFunc("POST /api/jobs/{id}/toggle", s.protect(s.handleToggleJob))
	mux.HandleFunc("GET /api/jobs/{id}/clipboard", s.handleJobClipboard)

	// Companies
	mux.HandleFunc("GET /api/companies", s.handleListCompanies)
	mux.HandleFunc("POST /api/companies", s.protect(s.handleCreateCompany))
	mux.HandleFunc("GET /api/companies.csv", s.handleExportCompaniesCSV)
	mux.HandleFunc("POST /api/companies.csv", s.protect(s.handleImportCompaniesCSV))
	mux.HandleFunc("GET /api/companies/{id}", s.handleGetCompany)
	mux.HandleFunc("PATCH /api/companies/{id}", s.protect(s.handleUpdateCompany))
	mux.HandleFunc("DELETE /api/companies/{id}", s.protect(s.handleDeleteCompany))

	// Contacts
	mux.HandleFunc("GET /api/companies/{id}/contacts", s.handleListContacts)
	mux.HandleFunc("POST /api/companies/{id}/contacts", s.protect(s.handleCreateContact))
	mux.HandleFunc("PATCH /api/companies/{id}/contacts/{contactID}", s.protect(s.handleUpdateContact))
	mux.HandleFunc("DELETE /api/companies/{id}/contacts/{contactID}", s.protect(s.handleDeleteContact))

	// Importer
	mux.HandleFunc("POST /api/import/company", s.protect(s.handleImportCompany))
	mux.HandleFunc("POST /api/import/job-posting", s.protect(s.handleImportJobPosting))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers when an allowed origin is configured.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.allowOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", s.allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.okResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
