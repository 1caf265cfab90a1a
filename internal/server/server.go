// Package server exposes a Session over a small REST API. It is a thin,
// replaceable front end: every handler calls the session synchronously
// and returns the refreshed totals so clients can re-render.
package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lavatech-dev/balance/internal/session"
)

// Server wraps one Session behind an HTTP router. The session has no
// internal locking, so a single mutex serializes every request that
// touches it.
type Server struct {
	session *session.Session
	logger  *zap.Logger
	router  chi.Router
	addr    string
	mu      sync.Mutex
}

// New creates a Server around a session.
func New(sess *session.Session, logger *zap.Logger, addr string) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{session: sess, logger: logger, router: r, addr: addr}
	r.Use(s.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/balance", s.getBalance)
		r.Post("/reset", s.reset)

		r.Get("/accounts", s.listAccounts)
		r.Post("/accounts", s.addAccount)
		r.Put("/accounts/{category}/{name}", s.modifyAccount)
		r.Delete("/accounts/{category}/{name}", s.deleteAccount)

		r.Post("/transactions/cash", s.cashPurchase)
		r.Post("/transactions/credit", s.creditPurchase)
		r.Post("/transactions/combined", s.combinedPurchase)
		r.Post("/transactions/advance", s.customerAdvance)
	})

	return s
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// ListenAndServe starts the server on its configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("balance server listening", zap.String("addr", s.addr))
	return http.ListenAndServe(s.addr, s.router)
}

// Serve accepts connections from an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("balance server listening", zap.String("addr", ln.Addr().String()))
	return http.Serve(ln, s.router)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
