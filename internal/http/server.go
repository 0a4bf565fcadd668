// Package http exposes the REST API: transaction, category, card, budget
// and savings CRUD, plus the stats summary and export endpoints.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/export"
	"fintrack/internal/services"
	"fintrack/internal/storage"
)

// Options collects the server's collaborators. Stores back the CRUD
// handlers directly; the services orchestrate everything that spans more
// than one store.
type Options struct {
	Addr          string
	Authenticator Authenticator
	Limiter       RateLimitStore
	Stats         *services.StatsService
	Savings       *services.SavingsService
	Transactions  storage.TransactionStore
	Categories    storage.CategoryStore
	Cards         storage.CardStore
	Budgets       storage.BudgetStore
	Encoder       export.Encoder

	// Ready is an optional readiness probe (storage ping).
	Ready func(ctx context.Context) error
}

type Server struct {
	http.Server

	auth         Authenticator
	limiter      RateLimitStore
	stats        *services.StatsService
	savings      *services.SavingsService
	transactions storage.TransactionStore
	categories   storage.CategoryStore
	cards        storage.CardStore
	budgets      storage.BudgetStore
	encoder      export.Encoder
	ready        func(ctx context.Context) error

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(opts Options) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    opts.Addr,
			Handler: mux,
		},
		auth:         opts.Authenticator,
		limiter:      opts.Limiter,
		stats:        opts.Stats,
		savings:      opts.Savings,
		transactions: opts.Transactions,
		categories:   opts.Categories,
		cards:        opts.Cards,
		budgets:      opts.Budgets,
		encoder:      opts.Encoder,
		ready:        opts.Ready,
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	api := s.protect

	mux.HandleFunc("GET /api/transactions", api(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", api(s.handleCreateTransaction))
	mux.HandleFunc("GET /api/transactions/{id}", api(s.handleGetTransaction))
	mux.HandleFunc("PUT /api/transactions/{id}", api(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", api(s.handleDeleteTransaction))

	mux.HandleFunc("GET /api/categories", api(s.handleListCategories))
	mux.HandleFunc("POST /api/categories", api(s.handleCreateCategory))
	mux.HandleFunc("PUT /api/categories/{id}", api(s.handleUpdateCategory))
	mux.HandleFunc("DELETE /api/categories/{id}", api(s.handleDeleteCategory))

	mux.HandleFunc("GET /api/cards", api(s.handleListCards))
	mux.HandleFunc("POST /api/cards", api(s.handleCreateCard))
	mux.HandleFunc("PUT /api/cards/{id}", api(s.handleUpdateCard))
	mux.HandleFunc("DELETE /api/cards/{id}", api(s.handleDeleteCard))

	mux.HandleFunc("GET /api/budgets", api(s.handleListBudgets))
	mux.HandleFunc("POST /api/budgets", api(s.handleCreateBudget))
	mux.HandleFunc("PUT /api/budgets/{id}", api(s.handleUpdateBudget))
	mux.HandleFunc("DELETE /api/budgets/{id}", api(s.handleDeleteBudget))

	mux.HandleFunc("GET /api/stats/summary", api(s.handleStatsSummary))
	mux.HandleFunc("GET /api/stats/export", api(s.handleStatsExport))
	mux.HandleFunc("POST /api/stats/export/sheets", api(s.handleStatsExportSheets))

	mux.HandleFunc("GET /api/savings/plans", api(s.handleListPlans))
	mux.HandleFunc("POST /api/savings/plans", api(s.handleCreatePlan))
	mux.HandleFunc("GET /api/savings/plans/{id}", api(s.handleGetPlan))
	mux.HandleFunc("PUT /api/savings/plans/{id}", api(s.handleUpdatePlan))
	mux.HandleFunc("DELETE /api/savings/plans/{id}", api(s.handleDeletePlan))
	mux.HandleFunc("GET /api/savings/plans/{id}/summary", api(s.handlePlanProgress))
	mux.HandleFunc("POST /api/savings/contributions", api(s.handleAddContribution))
	mux.HandleFunc("PUT /api/savings/contributions/{id}", api(s.handleUpdateContribution))
	mux.HandleFunc("DELETE /api/savings/contributions/{id}", api(s.handleDeleteContribution))

	return s
}

// protect wraps an API handler with request logging, security headers,
// rate limiting, and authentication.
func (s *Server) protect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ip := clientIP(r)

		requestID := generateRequestID()
		r = r.WithContext(withRequestID(r.Context(), requestID))
		ctx := r.Context()

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"client_ip", ip,
			"user_agent", r.Header.Get("User-Agent"))

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Cache-Control", "no-store")

		// Rate limiting applies to mutating requests only; reads are cheap
		// snapshot queries.
		if s.limiter != nil && r.Method != http.MethodGet {
			allowed, err := s.limiter.Allow(ctx, ip)
			if err != nil {
				// Fail open: a broken limiter backend must not take the
				// API down with it.
				slog.WarnContext(ctx, "Rate limiter unavailable", "error", err)
			} else if !allowed {
				slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", ip, "path", r.URL.Path)
				w.Header().Set("Retry-After", "60")
				writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "rate limit exceeded"})
				return
			}
		}

		owner, ok := s.auth.Authenticate(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
			return
		}
		r = r.WithContext(withOwnerID(r.Context(), owner))

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", ip)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

const ctxKeyRequestID ctxKey = "request_id"

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		if err := s.ready(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Shutdown gracefully shuts down the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
