// Package server provides the HTTP REST API for the resume builder.
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

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store is the persistence surface the handlers need. *db.DB implements it;
// tests substitute an in-memory fake.
type Store interface {
	CreateResume(ctx context.Context, ownerID uuid.UUID, title string) (*types.Resume, error)
	GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error)
	UpdateResume(ctx context.Context, r *types.Resume) error
	UpdateProgression(ctx context.Context, id uuid.UUID, progression int) error
	ListResumes(ctx context.Context, ownerID uuid.UUID) ([]db.ResumeSummary, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      Store
	database   *db.DB
	exporter   *export.Exporter
}

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
}

// New creates a server backed by PostgreSQL and a headless-Chrome exporter.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	s := newWithStore(database, export.New(export.NewChromeRasterizer()))
	s.database = database
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.httpServer.Handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for PDF exports
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// newWithStore wires the router around any Store and Exporter.
func newWithStore(store Store, exporter *export.Exporter) *Server {
	s := &Server{store: store, exporter: exporter}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume lifecycle
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handleUpdateResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)

	// Completion scoring
	mux.HandleFunc("GET /resumes/{id}/completion", s.handleCompletion)
	mux.HandleFunc("GET /resumes/{id}/completion/levels", s.handleCompletionLevels)
	mux.HandleFunc("GET /resumes/{id}/completion/{section}", s.handleSectionCompletion)

	// Step validation and wizard navigation
	mux.HandleFunc("POST /resumes/{id}/validate/{section}", s.handleValidateSection)
	mux.HandleFunc("POST /resumes/{id}/steps/next", s.handleStepNext)
	mux.HandleFunc("POST /resumes/{id}/steps/save", s.handleStepSave)

	// PDF export
	mux.HandleFunc("POST /resumes/{id}/export", s.handleExport)

	s.httpServer = &http.Server{Handler: s.withLogging(s.withCORS(mux))}
	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
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

	if s.database != nil {
		s.database.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
	})
}
