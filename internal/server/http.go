package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizzfoot/platform/internal/auth"
	"github.com/quizzfoot/platform/internal/config"
	"github.com/quizzfoot/platform/internal/leaderboard"
	"github.com/quizzfoot/platform/internal/logging"
	"github.com/quizzfoot/platform/internal/profile"
	"github.com/quizzfoot/platform/internal/question"
)

// Handlers groups the route handlers wired by the app bootstrap.
type Handlers struct {
	Questions    *question.HTTPHandler
	Profiles     *profile.HTTPHandler
	Leaderboards *leaderboard.HTTPHandler
	Play         http.HandlerFunc
}

// NewHTTPServer wires all API routes. Nil handlers leave their routes
// unregistered, which keeps partial wiring usable in tests.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, rdb *redis.Client, verifier *auth.Verifier, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.IntoContext(r.Context(), logger)
		if err := pingDependencies(ctx, pool, rdb); err != nil {
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if h.Questions != nil {
		mux.HandleFunc("/v1/questions", h.Questions.HandleGetPack)
	}

	if h.Profiles != nil {
		authed := auth.Middleware(verifier, logger)
		mux.Handle("/v1/profile", authed(auth.RequireRegistered(http.HandlerFunc(h.Profiles.HandleGet))))
		mux.Handle("/v1/profile/history", authed(auth.RequireRegistered(http.HandlerFunc(h.Profiles.HandleHistory))))
		mux.HandleFunc("/v1/badges", h.Profiles.HandleBadges)
	}

	if h.Leaderboards != nil {
		mux.HandleFunc("/v1/leaderboards/", h.Leaderboards.HandleGet)
	}

	if h.Play != nil {
		mux.HandleFunc("/ws/play", h.Play)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsMiddleware(cfg.CORS, mux),
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	log := logging.FromContext(ctx)
	if err := pool.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("postgres ping failed")
		return err
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis ping failed")
		return err
	}
	return nil
}

func corsMiddleware(cfg config.CORS, next http.Handler) http.Handler {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(cfg.AllowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			if cfg.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
