package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/api"
	"github.com/sadikmahmudadive/ieee-bubt-sb-website-sub000/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Auth
		v1.Group(func(login chi.Router) {
			login.Use(middleware.RateLimitMiddleware)
			login.Post("/auth/login", api.LoginHandler(deps))
		})
		v1.Post("/auth/logout", api.LogoutHandler(deps))
		v1.Get("/auth/session", api.SessionHandler(deps))

		// Public reads
		v1.Get("/overview", api.OverviewHandler(deps))
		v1.Get("/team", api.TeamPageHandler(deps))
		v1.Get("/chapters", api.ChapterListHandler(deps))
		v1.Get("/chapters/{slug}", api.ChapterHandler(deps))
		v1.Get("/events", api.ListEventsHandler(deps))
		v1.Get("/events/{slug}", api.GetEventHandler(deps))
		v1.Get("/news", api.ListNewsHandler(deps))
		v1.Get("/news/{slug}", api.GetNewsHandler(deps))
		v1.Get("/gallery", api.ListGalleryHandler(deps))

		// Public writes
		v1.Post("/applications", api.SubmitApplicationHandler(deps))
		v1.Post("/newsletter/subscribe", api.SubscribeHandler(deps))

		// Admin console: everything below requires a verified session cookie
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireSessionMiddleware(deps.Service.Sessions))

			admin.Get("/team", api.ListTeamMembersHandler(deps))
			admin.Post("/team", api.CreateTeamMemberHandler(deps))
			admin.Put("/team/{id}", api.UpdateTeamMemberHandler(deps))
			admin.Delete("/team/{id}", api.DeleteTeamMemberHandler(deps))

			admin.Get("/events", api.ListAllEventsHandler(deps))
			admin.Post("/events", api.CreateEventHandler(deps))
			admin.Put("/events/{id}", api.UpdateEventHandler(deps))
			admin.Delete("/events/{id}", api.DeleteEventHandler(deps))

			admin.Get("/news", api.ListAllNewsHandler(deps))
			admin.Post("/news", api.CreateNewsHandler(deps))
			admin.Put("/news/{id}", api.UpdateNewsHandler(deps))
			admin.Delete("/news/{id}", api.DeleteNewsHandler(deps))

			admin.Post("/gallery", api.UploadGalleryImageHandler(deps))
			admin.Delete("/gallery/{id}", api.DeleteGalleryImageHandler(deps))

			admin.Get("/applications", api.ListApplicationsHandler(deps))
			admin.Put("/applications/{id}", api.ReviewApplicationHandler(deps))
			admin.Delete("/applications/{id}", api.DeleteApplicationHandler(deps))

			admin.Get("/subscribers", api.ListSubscribersHandler(deps))
			admin.Delete("/subscribers/{email}", api.UnsubscribeHandler(deps))
		})
	})
}
