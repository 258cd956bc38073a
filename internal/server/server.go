// Package server provides the HTTP REST API for the resume wizard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akhilmohan/resume-wizard/internal/ingestion"
	"github.com/akhilmohan/resume-wizard/internal/llm"
	"github.com/akhilmohan/resume-wizard/internal/optimizer"
	"github.com/akhilmohan/resume-wizard/internal/store"
	"github.com/akhilmohan/resume-wizard/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	session    *store.Session
	extractor  *ingestion.Extractor
	optimizer  *optimizer.Optimizer
	llmClient  llm.Client
	style      types.StyleVariant
}

// Config holds server configuration
type Config struct {
	Port   int
	APIKey string
	Style  string
}

// New creates a new server instance. The Gemini client is optional; without
// an API key the document-ingestion and optimization endpoints return 503.
func New(ctx context.Context, cfg Config) (*Server, error) {
	var client llm.Client
	var opt *optimizer.Optimizer

	if cfg.APIKey != "" {
		c, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		client = c
		opt = optimizer.New(optimizer.NewLLMRewriter(c), nil)
	}

	style := types.StyleVariant(cfg.Style)
	if style == "" {
		style = types.StyleModern
	}

	s := newServer(store.NewSession(), ingestion.NewExtractor(client), opt, style)
	s.llmClient = client

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for LLM-backed optimization
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires the handler dependencies without the listener. Used by New
// and by tests.
func newServer(session *store.Session, extractor *ingestion.Extractor, opt *optimizer.Optimizer, style types.StyleVariant) *Server {
	s := &Server{
		session:   session,
		extractor: extractor,
		optimizer: opt,
		style:     style,
	}
	s.applyDefaultStyle()
	return s
}

// applyDefaultStyle sets the configured rendering style on the session resume.
func (s *Server) applyDefaultStyle() {
	if s.style == "" {
		return
	}
	s.session.UpdateResume(func(r *types.ResumeRecord) {
		r.Style = s.style
	})
}

// routes builds the request router.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume state
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume", s.handlePutResume)
	mux.HandleFunc("PUT /resume/personal", s.handlePutPersonal)
	mux.HandleFunc("PUT /resume/objective", s.handlePutObjective)
	mux.HandleFunc("PUT /resume/skills", s.handlePutSkills)
	mux.HandleFunc("PUT /resume/languages", s.handlePutLanguages)
	mux.HandleFunc("PUT /resume/education", s.handlePutEducation)
	mux.HandleFunc("PUT /resume/experience", s.handlePutExperience)
	mux.HandleFunc("PUT /resume/projects", s.handlePutProjects)
	mux.HandleFunc("PUT /resume/certifications", s.handlePutCertifications)

	// Job requirement
	mux.HandleFunc("GET /job", s.handleGetJob)
	mux.HandleFunc("POST /job", s.handlePostJob)
	mux.HandleFunc("POST /job/document", s.handlePostJobDocument)

	// Analysis
	mux.HandleFunc("GET /score", s.handleScore)
	mux.HandleFunc("GET /skills", s.handleSkills)
	mux.HandleFunc("GET /suggestions", s.handleSuggestions)

	// Optimization
	mux.HandleFunc("POST /optimize", s.handleOptimize)
	mux.HandleFunc("GET /optimized", s.handleGetOptimized)

	// Rendering
	mux.HandleFunc("GET /render", s.handleRenderHTML)
	mux.HandleFunc("GET /render/pdf", s.handleRenderPDF)

	// Session
	mux.HandleFunc("POST /reset", s.handleReset)

	return mux
}

// Start begins listening for requests and blocks until shutdown
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

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

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
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
