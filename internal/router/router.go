// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain of the
// portfolio API. Everything except the liveness probe lives under /api.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
)

// Handlers holds the handler groups served by the router.
type Handlers struct {
	Projects     *handlers.Projects
	Contacts     *handlers.Contacts
	Testimonials *handlers.Testimonials
	Profile      *handlers.Profile
}

// Options tunes the middleware chain.
type Options struct {
	// CORSOrigins lists allowed origins; empty or "*" allows all.
	CORSOrigins []string
	// ContactLimiter throttles POST /api/contacts. Nil disables it.
	ContactLimiter *middleware.RateLimiter
}

// New creates the configured chi router.
//
// chi matches literal segments before parameters, so /projects/featured and
// /projects/single/{id} win over /projects/{key} whatever the declaration
// order. GET and DELETE on /projects/{key} share the parameter name because
// they share the route node.
func New(h Handlers, opts Options) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.SecureHeaders)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Health)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.Projects.List)
			r.Post("/", h.Projects.Create)
			r.Get("/featured", h.Projects.Featured)
			r.Get("/single/{id}", h.Projects.Get)
			r.Get("/{"+handlers.KeyParam+"}", h.Projects.ByCategory)
			r.Delete("/{"+handlers.KeyParam+"}", h.Projects.Delete)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.Contacts.List)
			if opts.ContactLimiter != nil {
				r.With(opts.ContactLimiter.Middleware).Post("/", h.Contacts.Create)
			} else {
				r.Post("/", h.Contacts.Create)
			}
			r.Patch("/{id}/read", h.Contacts.MarkRead)
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", h.Testimonials.List)
			r.Post("/", h.Testimonials.Create)
			r.Delete("/{id}", h.Testimonials.Delete)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.Profile.Get)
			r.Patch("/", h.Profile.Update)
			r.Post("/cv-download", h.Profile.DownloadCV)
		})
	})

	return r
}

// healthHandler is the liveness probe.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"detail":"Not Found"}`))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"detail":"Method Not Allowed"}`))
}
