package routes

import (
	"github.com/go-chi/chi/v5"

	"campus-spaces/registrar/internal/api"
	"campus-spaces/registrar/internal/metrics"
	"campus-spaces/registrar/internal/middleware"
)

// RegisterAPIRoutes registers all API routes and handlers. This keeps route
// registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, metricsReg *metrics.MetricsRegistry) {

	// Registration and login are throttled per IP
	r.Group(func(limited chi.Router) {
		limited.Use(middleware.RateLimitMiddleware)
		limited.Post("/register", api.RegisterMemberHandler(deps.Services.Registration, metricsReg))
		limited.Post("/login", api.LoginHandler(deps.Services.Auth))
	})

	r.Post("/admin/approve", api.ApproveStudentHandler(deps.Services.Approval, metricsReg))

	r.Get("/leaderboard", api.LeaderboardHandler(deps.Services.Leaderboard, metricsReg))

	r.Get("/member/get", api.GetMemberHandler(deps.Services.Member))
	r.Post("/member/update", api.UpdateMemberHandler(deps.Services.Member))

	r.Post("/clubs/hasAccess", api.ClubAccessHandler(deps.Services.Club))

	r.Get("/institutions", api.ListInstitutionsHandler(deps.Services.Directory))
	r.Get("/events", api.ListEventsHandler(deps.Services.Directory))

	// Session-authenticated group
	r.Group(func(authed chi.Router) {
		authed.Use(middleware.SessionAuthMiddleware(deps.Services.Session, deps.Services.Token))
		authed.Get("/me", api.MeHandler(deps.Services.Member))
	})
}
