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

	"github.com/google/uuid"
	"github.com/jonathan/career-advisor/internal/assistant"
	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/config"
	"github.com/jonathan/career-advisor/internal/db"
	"github.com/jonathan/career-advisor/internal/discovery"
	"github.com/jonathan/career-advisor/internal/extract"
	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/server/ratelimit"
	"github.com/jonathan/career-advisor/internal/trends"
)

// Store is the database surface the handlers depend on.
type Store interface {
	UserStore
	SaveAnalysis(ctx context.Context, userID uuid.UUID, analysis any) error
	LatestAnalysis(ctx context.Context, userID uuid.UUID) ([]byte, error)
	SaveRoadmap(ctx context.Context, userID uuid.UUID, targetRole string, roadmap any) error
	LatestRoadmap(ctx context.Context, userID uuid.UUID) ([]byte, error)
	GetProgress(ctx context.Context, userID uuid.UUID) (*db.ProgressRecord, error)
	SaveProgress(ctx context.Context, userID uuid.UUID, completedCourses []string, phaseTotals map[string]int) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	database    *db.DB
	store       Store
	llmClient   llm.Client
	catalog     *catalog.Catalog
	extractor   *extract.Extractor
	trends      *trends.Service
	assistant   *assistant.Service
	discovery   *discovery.Service
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port          int
	DatabaseURL   string
	GeminiAPIKey  string
	JSearchAPIKey string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		llmClient, err = llm.NewClient(context.Background(), llm.DefaultGeminiConfig(), cfg.GeminiAPIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	var fetcher trends.Fetcher
	if cfg.JSearchAPIKey != "" {
		fetcher = trends.NewJSearchClient(cfg.JSearchAPIKey)
	}

	s := &Server{
		database:  database,
		store:     database,
		llmClient: llmClient,
		catalog:   cat,
		extractor: extract.NewExtractor(cat.Skills()),
		trends:    trends.NewService(fetcher, cat),
		assistant: assistant.NewService(llmClient, cat),
		discovery: discovery.NewService(llmClient, cat),
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication endpoints
	mux.HandleFunc("POST /auth/signup", s.authHandler.Signup)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("GET /auth/me", auth(http.HandlerFunc(s.authHandler.Me)))

	// Resume analysis and roadmap endpoints
	mux.HandleFunc("POST /analyze_resume", s.handleAnalyzeResume)
	mux.HandleFunc("GET /market_trends", s.handleMarketTrends)
	mux.HandleFunc("POST /generate_roadmap", s.handleGenerateRoadmap)
	mux.Handle("POST /roadmaps/save", auth(http.HandlerFunc(s.handleSaveRoadmap)))
	mux.Handle("GET /roadmaps/latest", auth(http.HandlerFunc(s.handleLatestRoadmap)))
	mux.Handle("GET /analyses/latest", auth(http.HandlerFunc(s.handleLatestAnalysis)))

	// Assistant endpoints
	mux.HandleFunc("POST /explain_roadmap", s.handleExplainRoadmap)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("POST /translate", s.handleTranslate)

	// Role discovery endpoints
	mux.HandleFunc("GET /role-discovery/questions", s.handleDiscoveryQuestions)
	mux.HandleFunc("POST /role-discovery/analyze", s.handleDiscoveryAnalyze)

	// Course progress endpoints
	mux.Handle("POST /progress/mark-complete", auth(http.HandlerFunc(s.handleMarkComplete)))
	mux.Handle("POST /progress/uncomplete", auth(http.HandlerFunc(s.handleUncomplete)))
	mux.Handle("GET /progress/status", auth(http.HandlerFunc(s.handleProgressStatus)))

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

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	s.database.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

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
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
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

// optionalUserID returns the authenticated user ID for endpoints that accept
// but do not require a bearer token. Returns uuid.Nil when no valid token is
// present.
func (s *Server) optionalUserID(r *http.Request) uuid.UUID {
	tokenString := middleware.ExtractBearerToken(r)
	if tokenString == "" {
		return uuid.Nil
	}
	claims, err := s.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil
	}
	return claims.UserID
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
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
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

	// Log rate limit hit
	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
