// Package server provides the HTTP REST API for the resume gap analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/curriculum"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/llm"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/logging"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/market"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/server/ratelimit"
	"github.com/MohitSingh107/PoC-Job-Match-Analysis/internal/session"
)

const (
	// sessionTTL is how long an extracted resume stays available after upload.
	sessionTTL = time.Hour
	// pruneInterval is how often expired sessions are evicted.
	pruneInterval = 15 * time.Minute
)

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	client        llm.Client
	market        *market.Data
	curriculum    *curriculum.Curriculum
	sessions      *session.Store
	rateLimiter   *ratelimit.Limiter
	referenceDate string
	pruneStop     chan struct{}
}

// Config holds server configuration
type Config struct {
	Port           int
	Provider       string
	APIKey         string
	MarketDir      string
	CurriculumPath string
	ReferenceDate  string
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	client, err := llm.NewClient(ctx, llm.DefaultConfigFor(llm.Provider(cfg.Provider)), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	marketData, err := loadMarket(cfg.MarketDir)
	if err != nil {
		return nil, err
	}

	course, err := loadCurriculum(cfg.CurriculumPath)
	if err != nil {
		return nil, err
	}

	s := &Server{
		client:        client,
		market:        marketData,
		curriculum:    course,
		sessions:      session.NewStore(),
		rateLimiter:   ratelimit.NewLimiter(ratelimit.LoadConfig()),
		referenceDate: cfg.ReferenceDate,
		pruneStop:     make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/extract-text", s.handleExtractText)
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/analyze-resume", s.handleAnalyzeResume)
	mux.HandleFunc("POST /api/generate-improved-resume", s.handleGenerateImprovedResume)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for generative runs
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func loadMarket(dir string) (*market.Data, error) {
	if dir != "" {
		data, err := market.Load(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load market data: %w", err)
		}
		return data, nil
	}
	data, err := market.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load market data: %w", err)
	}
	return data, nil
}

func loadCurriculum(path string) (*curriculum.Curriculum, error) {
	if path != "" {
		course, err := curriculum.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load curriculum: %w", err)
		}
		return course, nil
	}
	course, err := curriculum.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("failed to load curriculum: %w", err)
	}
	return course, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go s.pruneSessions()

	go func() {
		slog.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	close(s.pruneStop)
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if err := s.client.Close(); err != nil {
		slog.Warn("failed to close completion client", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

// pruneSessions evicts sessions older than the TTL on a fixed interval.
func (s *Server) pruneSessions() {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.pruneStop:
			return
		case <-ticker.C:
			if n := s.sessions.PruneOlderThan(time.Now().Add(-sessionTTL)); n > 0 {
				slog.Info("pruned expired sessions", "count", n)
			}
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging attaches a request ID to the context and logs request boundaries
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		ctx := logging.WithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		slog.InfoContext(ctx, "request started", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
		slog.InfoContext(ctx, "request completed", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)

		if !allowed {
			s.rateLimitResponse(r.Context(), w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse is the error body shape for every non-2xx response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message, detail string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message, Detail: detail})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
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

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(ctx context.Context, w http.ResponseWriter, info ratelimit.Info) {
	if info.RetryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	slog.WarnContext(ctx, "rate limit exceeded", "limit", info.Limit, "reset_at", info.ResetTime.Format(time.RFC3339))

	s.errorResponse(w, http.StatusTooManyRequests, "rate_limit_exceeded",
		fmt.Sprintf("limit %d, retry after %s", info.Limit, info.ResetTime.Format(time.RFC3339)))
}
