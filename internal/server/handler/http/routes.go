package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	appmw "leadvault/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the lead-capture API.
//
// Routes:
//
//	POST /api/auth/register          → authHandler.Register
//	POST /api/auth/login             → authHandler.Login
//	GET  /api/auth/me                → authHandler.Me            (auth)
//	POST /api/contacts               → contactHandler.Create     (auth)
//	GET  /api/contacts               → contactHandler.List       (auth)
//	GET  /api/contacts/export        → contactHandler.Export     (auth)
//	GET  /api/contacts/{id}          → contactHandler.Get        (auth)
//	PUT  /api/contacts/{id}          → contactHandler.Update     (auth)
//	POST /api/scan/{kind}            → scanHandler.Extract       (auth)
//	GET  /api/admin/contacts         → adminHandler.ListContacts (auth, admin)
//	GET  /api/admin/contacts/export  → adminHandler.ExportContacts
//	GET  /api/admin/users            → adminHandler.ListUsers
//	GET  /api/admin/stats            → adminHandler.Stats
//
// JSON content-type enforcement applies to the JSON mutation endpoints; the
// scan endpoint takes multipart uploads and is exempt.
func NewRouter(
	authHandler *AuthHandler,
	contactHandler *ContactHandler,
	adminHandler *AdminHandler,
	scanHandler *ScanHandler,
	sessions appmw.SessionRestorer,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(appmw.WithRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware.AllowContentType("application/json"))
			r.Post("/auth/register", authHandler.Register)
			r.Post("/auth/login", authHandler.Login)
		})

		// Protected group: requires a valid session token
		r.Group(func(r chi.Router) {
			r.Use(appmw.Authenticate(sessions))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", contactHandler.List)
				r.Get("/export", contactHandler.Export)
				r.Get("/{id}", contactHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(chiMiddleware.AllowContentType("application/json"))
					r.Post("/", contactHandler.Create)
					r.Put("/{id}", contactHandler.Update)
				})
			})

			r.Post("/scan/{kind}", scanHandler.Extract)

			// Admin-only views
			r.Route("/admin", func(r chi.Router) {
				r.Use(appmw.RequireAdmin)
				r.Get("/contacts", adminHandler.ListContacts)
				r.Get("/contacts/export", adminHandler.ExportContacts)
				r.Get("/users", adminHandler.ListUsers)
				r.Get("/stats", adminHandler.Stats)
			})
		})
	})

	return r
}
