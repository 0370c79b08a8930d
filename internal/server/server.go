package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/cv-builder/internal/assist"
	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/preview"
	"github.com/jonathan/cv-builder/internal/server/ratelimit"
	"github.com/jonathan/cv-builder/internal/session"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *session.Store
	assist      *assist.Service
	renderer    *preview.Renderer
	rateLimiter *ratelimit.Limiter
	skillPolicy editor.SkillPolicy
}

// Config holds server configuration
type Config struct {
	Port       int
	Client     llm.Client
	SessionTTL time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	renderer, err := preview.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize preview renderer: %w", err)
	}

	s := &Server{
		store:    session.NewStore(cfg.SessionTTL),
		assist:   assist.NewService(cfg.Client),
		renderer: renderer,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Session lifecycle
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)

	// Personal info
	mux.HandleFunc("PUT /sessions/{id}/personal", s.handlePutPersonal)
	mux.HandleFunc("POST /sessions/{id}/personal/photo", s.handleUploadPhoto)

	// Section editing
	mux.HandleFunc("PUT /sessions/{id}/{section}", s.handlePutSection)
	mux.HandleFunc("POST /sessions/{id}/{section}/rows", s.handleAddRow)
	mux.HandleFunc("PATCH /sessions/{id}/{section}/rows/{row_id}", s.handleUpdateRow)
	mux.HandleFunc("DELETE /sessions/{id}/{section}/rows/{row_id}", s.handleDeleteRow)

	// Skills list
	mux.HandleFunc("POST /sessions/{id}/skills", s.handleAddSkill)
	mux.HandleFunc("DELETE /sessions/{id}/skills/{skill}", s.handleRemoveSkill)

	// Achievement lines within one experience row
	mux.HandleFunc("POST /sessions/{id}/experience/rows/{row_id}/achievements", s.handleAddAchievement)
	mux.HandleFunc("PATCH /sessions/{id}/experience/rows/{row_id}/achievements/{index}", s.handleUpdateAchievement)
	mux.HandleFunc("DELETE /sessions/{id}/experience/rows/{row_id}/achievements/{index}", s.handleRemoveAchievement)

	// AI assist
	mux.HandleFunc("POST /sessions/{id}/assist/achievements", s.handleAssistAchievements)
	mux.HandleFunc("POST /sessions/{id}/assist/skills", s.handleAssistSkills)
	mux.HandleFunc("POST /sessions/{id}/assist/certification", s.handleAssistCertification)
	mux.HandleFunc("POST /sessions/{id}/assist/project-description", s.handleAssistProjectDescription)
	mux.HandleFunc("POST /sessions/{id}/assist/technologies", s.handleAssistTechnologies)

	// Preview
	mux.HandleFunc("GET /sessions/{id}/preview", s.handlePreview)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // assist calls wait on the completion backend
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	s.store.Stop()

	log.Println("Server stopped")
	return nil
}

// Handler exposes the full middleware-wrapped handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
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

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
