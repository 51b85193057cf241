package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/resumeai/internal/server/jwt"
	"github.com/iudanet/resumeai/internal/server/middleware"
	"github.com/iudanet/resumeai/internal/server/respond"
	"github.com/iudanet/resumeai/internal/server/storage"
	"github.com/iudanet/resumeai/internal/validation"
)

type Deps struct {
	Logger    *slog.Logger
	Store     storage.Storage
	Tokens    *jwt.Service
	Validator *validation.Validator
	// Limiter ограничивает /auth/login и /auth/register, nil отключает ограничение
	Limiter *middleware.RateLimiter
	Version string
}

// NewRouter собирает REST API под префиксом /v1
func NewRouter(d Deps) http.Handler {
	auth := NewAuthHandler(d.Logger, d.Store, d.Store, d.Tokens, d.Validator)
	interview := NewInterviewHandler(d.Logger, d.Store, d.Validator)
	resumes := NewResumeHandler(d.Logger, d.Store, d.Validator)
	users := NewUserHandler(d.Logger, d.Store, d.Validator)
	health := NewHealthHandler(d.Version)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LoggingMiddleware(d.Logger, "/v1/health"))
	r.Use(middleware.RecoveryMiddleware(d.Logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respond.Detail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Detail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", health.Health)

		r.Group(func(r chi.Router) {
			if d.Limiter != nil {
				r.Use(d.Limiter.Middleware(d.Logger))
			}
			r.Post("/auth/register", auth.Register)
			r.Post("/auth/login", auth.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(d.Logger, d.Tokens, d.Store))

			r.Post("/auth/logout", auth.Logout)
			r.Post("/auth/refresh", auth.Refresh)

			r.Route("/interview/sessions", func(r chi.Router) {
				r.Get("/", interview.List)
				r.Post("/", interview.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", interview.Get)
					r.Delete("/", interview.Delete)
					r.Get("/messages", interview.Messages)
					r.Post("/messages", interview.Send)
					r.Post("/complete", interview.Complete)
					r.Get("/resume", interview.Resume)
				})
			})

			r.Route("/resumes", func(r chi.Router) {
				r.Get("/", resumes.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", resumes.Get)
					r.Get("/download", resumes.Download)
					r.Post("/regenerate", resumes.Regenerate)
				})
			})

			r.Get("/user/profile", users.Profile)
			r.Patch("/user/profile", users.UpdateProfile)
			r.Post("/user/change-password", users.ChangePassword)
		})
	})

	return r
}
