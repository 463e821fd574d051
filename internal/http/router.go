package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/manchego/internal/http/account"
	"github.com/MrJamesThe3rd/manchego/internal/http/auth"
	"github.com/MrJamesThe3rd/manchego/internal/http/imports"
	"github.com/MrJamesThe3rd/manchego/internal/http/ledger"
)

type Options struct {
	AllowedOrigins []string
	// Auth is nil when the API runs without a JWT secret.
	Auth *auth.Authenticator
}

func New(
	accountsV1 *account.Handler,
	ledgerV1 *ledger.Handler,
	importsV1 *imports.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Auth != nil {
			r.Use(opts.Auth.Middleware)
		}

		r.Route("/accounts", accountsV1.Routes)
		r.Route("/ledger", ledgerV1.Routes)
		r.Route("/imports", importsV1.Routes)
	})

	return router
}
