package main

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

func (s *Server) router() {
	r := s.Factory.Router
	mw := s.Factory.Middleware

	secureHeaders := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'",
	})

	r.Use(chimiddleware.RealIP)
	r.Use(mw.RequestID)
	r.Use(mw.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(secureHeaders.Handler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.Config.Server.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(s.Config.RateLimit.Global, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", s.Handlers.HealthCheckHandler)

		r.Route("/auth", func(r chi.Router) {
			// Login gets a tighter limit than the rest of the API.
			r.With(httprate.LimitByIP(s.Config.RateLimit.Login, time.Minute)).
				Post("/login", s.Handlers.Login)
		})

		r.Route("/members", func(r chi.Router) {
			r.Use(mw.RequireAuth)

			r.Post("/", s.Handlers.CreateMember)
			r.Get("/", s.Handlers.ListMembers)
			r.Get("/{id}", s.Handlers.MemberByID)
			r.Put("/{id}", s.Handlers.UpdateMember)
			r.Delete("/{id}", s.Handlers.DeleteMember)
		})
	})
}
