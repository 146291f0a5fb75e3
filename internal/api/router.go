package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jcarrick/flagboard/internal/api/handler"
	"github.com/jcarrick/flagboard/internal/api/middleware"
	"github.com/jcarrick/flagboard/internal/services/auth"
	"github.com/jcarrick/flagboard/internal/services/leaderboard"
	"github.com/jcarrick/flagboard/internal/services/scoring"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	ScoringService     *scoring.Service
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	scoreHandler := handler.NewScoreHandler(cfg.ScoringService, cfg.LeaderboardService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for signup/login)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Team routes (all require auth)
	teams := api.PathPrefix("/teams").Subrouter()
	teams.Use(authMiddleware)
	teams.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	teams.HandleFunc("/me/score", scoreHandler.MyScore).Methods(http.MethodGet)

	// Flag submission (requires auth)
	flags := api.PathPrefix("/flags").Subrouter()
	flags.Use(authMiddleware)
	flags.HandleFunc("", scoreHandler.SubmitFlag).Methods(http.MethodPost)

	// Leaderboard is public
	api.HandleFunc("/leaderboard", scoreHandler.Leaderboard).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
