package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/karanvir-s/employee-directory-api/internal/api/handlers"
	"github.com/karanvir-s/employee-directory-api/internal/api/middleware"
	"github.com/karanvir-s/employee-directory-api/internal/config"
	"github.com/karanvir-s/employee-directory-api/internal/service"
	"github.com/karanvir-s/employee-directory-api/internal/token"
)

func NewRouter(services *service.Services, codec *token.Codec, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, cfg.IsProduction())
	employeeHandler := handlers.NewEmployeeHandler(services.Employee, cfg.MaxUploadBytes)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(codec))
				r.Get("/me", authHandler.Me)
			})
		})

		// Employee routes, all behind the gate
		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.Auth(codec))
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)
		})
	})

	return r
}
