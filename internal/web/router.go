package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rtuclub/eventdesk/internal/auth"
	"github.com/rtuclub/eventdesk/internal/handlers"
	"github.com/rtuclub/eventdesk/internal/metrics"
)

func Router(api *handlers.API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Public
	r.Post("/api/login", api.Login)
	r.Post("/api/logout", api.Logout)
	r.Post("/api/register/member", api.RegisterMember)
	r.Post("/api/register/student", api.RegisterStudent)
	r.Get("/api/events", api.ListEvents)
	r.Get("/api/events/{id}", api.GetEvent)
	r.Get("/api/events/{id}/poster.png", api.Poster)
	r.Get("/api/users/roll/{rollNumber}", api.UserByRoll)
	r.Get("/api/users/email/{email}", api.UserByEmail)

	// Badge QR image
	r.Get("/qr/{token}.png", api.QR)

	// Admin-guarded operations
	r.Group(func(ag chi.Router) {
		ag.Use(auth.RequireAdmin(api.Cfg.JWTSigningKey, api.Cfg.JWTIssuer))

		ag.Post("/api/scan/{token}", api.Scan)
		ag.Post("/api/events", api.CreateEvent)
		ag.Delete("/api/events/{id}", api.DeleteEvent)
		ag.Get("/api/events/{id}/attendance", api.EventAttendance)
		ag.Post("/api/events/{id}/certificates", api.SendCertificates)
		ag.Post("/api/events/{id}/reminders", api.SendReminders)
	})

	return r
}
