// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bvc-digitalhub/internal/app"
	"github.com/MKhiriev/bvc-digitalhub/internal/utils"
	"github.com/MKhiriev/bvc-digitalhub/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// corsMaxAge is the preflight cache lifetime in seconds.
const corsMaxAge = 300

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   h.cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{"Authorization", traceIDHeader},
			AllowCredentials: true,
			MaxAge:           corsMaxAge,
		}),
	)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNotFound}, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusMethodNotAllowed)}, http.StatusMethodNotAllowed)
	})

	router.Get("/", h.liveness)

	router.Route("/api", func(r chi.Router) {
		// public routes; a sent token is resolved but never required
		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth)

			r.Get("/version", h.getServerVersion)
			r.Get("/info/stats", h.stats)
			r.Get("/info/staff", h.listFaculty)
			r.Get("/info/staff/{id}", h.getFaculty)
			r.Get("/info/events", h.publicListEvents)
			r.Get("/info/events/{id}", h.getEvent)
			r.Get("/info/jobs", h.listJobs)
			r.Get("/info/jobs/{id}", h.getJob)
			r.Post("/info/jobs/{id}/apply", h.applyForJob)
		})

		// student signup and login
		r.Route("/auth", func(r chi.Router) {
			r.Post("/send-otp", h.sendOTP)
			r.Post("/verify-otp", h.verifyOTP)
			r.Post("/signup", h.signup)
			r.Post("/login", h.loginStudent)
		})

		r.With(h.authenticate).Get("/session", h.session)

		r.Route("/users", func(r chi.Router) {
			r.Use(h.authenticate, h.requireRole(models.RoleStudent))

			r.Get("/me", h.getOwnStudentProfile)
			r.Put("/me", h.updateOwnStudentProfile)
		})

		r.Route("/staff", func(r chi.Router) {
			r.Post("/auth/login", h.loginStaff)

			r.With(h.authenticate, h.requireRole(models.RoleStaff)).Put("/me", h.updateOwnStaffProfile)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth/login", h.loginAdmin)

			r.Group(func(r chi.Router) {
				r.Use(h.authenticate, h.requireRole(models.RoleAdmin))

				r.Get("/users", h.adminListStudents)
				r.Get("/users/{id}", h.adminGetStudent)
				r.Put("/users/{id}", h.adminUpdateStudent)
				r.Delete("/users/{id}", h.adminDeleteStudent)

				r.Post("/staff", h.adminCreateStaff)
				r.Get("/staff", h.adminListStaff)
				r.Put("/staff/{id}", h.adminUpdateStaff)
				r.Delete("/staff/{id}", h.adminDeleteStaff)

				r.Get("/events", h.adminListEvents)
				r.Post("/events", h.adminCreateEvent)
				r.Put("/events/{id}", h.adminUpdateEvent)
				r.Delete("/events/{id}", h.adminDeleteEvent)

				r.Get("/jobs", h.listJobs)
				r.Post("/jobs", h.adminCreateJob)
				r.Put("/jobs/{id}", h.adminUpdateJob)
				r.Delete("/jobs/{id}", h.adminDeleteJob)
			})
		})
	})

	return router
}
