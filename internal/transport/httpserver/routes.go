package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/config"
	"github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver/handler"
	authmw "github.com/psn74720-cell/Sree-Janani-Transillers-rms/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *authmw.Auth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/signup", handlers.SignUp)
		r.Post("/auth/signin", handlers.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Post("/auth/signout", handlers.SignOut)
			r.Get("/auth/me", handlers.Me)

			r.Get("/stats/overview", handlers.StatsOverview)

			r.Get("/production", handlers.ListProduction)
			r.Post("/production", handlers.CreateProduction)
			r.Delete("/production/{id}", handlers.DeleteProduction)

			r.Get("/sales", handlers.ListSales)
			r.Post("/sales", handlers.CreateSales)
			r.Delete("/sales/{id}", handlers.DeleteSales)
		})
	})

	return r
}
