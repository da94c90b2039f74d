package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/estate-service/internal/api/http/handlers"
	"github.com/spec-kit/estate-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Estates        *handlers.EstatesHandler
	Sellers        *handlers.SellersHandler
	Meetings       *handlers.MeetingsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authed := cfg.AuthMiddleware.Handle

	estateGroup := app.Group("/estate")
	estateGroup.Post("/createEstate", authed, auth.RequireUser(), cfg.Estates.CreateEstate)
	estateGroup.Get("/getEstates", cfg.Estates.ListEstates)
	estateGroup.Get("/getEstateInfo/:id", cfg.Estates.GetEstateInfo)
	estateGroup.Post("/getEstatesFromUser/:id", authed, auth.RequireUser(), cfg.Estates.ListEstatesFromUser)
	estateGroup.Post("/approveEstate/:id", authed, auth.RequireAdmin(), cfg.Estates.ApproveEstate)
	estateGroup.Get("/getNoApprovedEstates", authed, auth.RequireAdmin(), cfg.Estates.ListPendingEstates)
	estateGroup.Put("/assignSeller", authed, auth.RequireAdmin(), cfg.Estates.AssignSeller)

	sellerGroup := app.Group("/seller")
	sellerGroup.Post("/addSeller", authed, auth.RequireUser(), cfg.Sellers.AddSeller)
	sellerGroup.Post("/addVerifiedSeller", authed, auth.RequireAdmin(), cfg.Sellers.AddVerifiedSeller)
	sellerGroup.Get("/getSellerById/:id", cfg.Sellers.GetSellerByID)

	meetingGroup := app.Group("/meeting")
	meetingGroup.Post("/createMeeting", authed, auth.RequireUser(), cfg.Meetings.CreateMeeting)
	meetingGroup.Get("/getAllMeetingsFromUser", authed, auth.RequireUser(), cfg.Meetings.ListMyMeetings)
	meetingGroup.Get("/getMyMeetingInfo/:id", authed, auth.RequireUser(), cfg.Meetings.ListMyMeetingsDetailed)
	meetingGroup.Get("/getMeetingsWhereImSeller/:id", authed, auth.RequireUser(), cfg.Meetings.ListMeetingsWhereImSeller)
	meetingGroup.Put("/updateMeetingStatus/:id", authed, auth.RequireUser(), cfg.Meetings.UpdateMeetingStatus)
}
