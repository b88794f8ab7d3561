// internal/api/router.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"banktransfer/internal/api/handler"
	"banktransfer/internal/api/middleware"
	"banktransfer/internal/auth"
)

// NewRouter sets up and returns the HTTP router.
func NewRouter(
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	transferHandler *handler.TransferHandler,
	tokens *auth.TokenService,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(handler.DefaultTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Public account views: destination accounts can be inspected
		// before transferring.
		r.Get("/accounts/{accountID}", accountHandler.GetByID)
		r.Get("/accounts/{accountID}/transfers", accountHandler.Transfers)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticator(tokens))

			r.Get("/accounts", accountHandler.ListMine)
			r.Post("/transfers", transferHandler.Create)
			r.Get("/transfers/by-account/{accountID}", transferHandler.HistoryByAccount)
		})
	})

	return r
}
