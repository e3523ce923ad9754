package routes

import (
	"github.com/go-chi/chi/v5"

	"field-ministry/campo/internal/api"
	"field-ministry/campo/internal/auth"
	"field-ministry/campo/internal/middleware"
)

// RegisterAPIRoutes mounts every authenticated /api endpoint.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	svc := deps.Services

	r.Route("/api", func(a chi.Router) {
		a.Use(middleware.AuthMiddleware(svc.Sessions, deps.Repo.Users, deps.Repo.Keys, deps.Provider))

		a.Get("/auth/user", api.CurrentUserHandler(svc.Users))

		a.Route("/territories", func(t chi.Router) {
			t.Get("/", api.ListTerritoriesHandler(svc.Territories))
			t.Post("/", api.CreateTerritoryHandler(svc.Territories))
			t.Get("/{id}", api.GetTerritoryHandler(svc.Territories))
			t.Put("/{id}", api.UpdateTerritoryHandler(svc.Territories))
			t.Delete("/{id}", api.DeleteTerritoryHandler(svc.Territories))
			t.Get("/{id}/blocks", api.ListBlocksHandler(svc.Territories))
		})

		a.Post("/blocks", api.CreateBlockHandler(svc.Territories))
		a.Put("/blocks/{id}", api.UpdateBlockHandler(svc.Territories))
		a.Delete("/blocks/{id}", api.DeleteBlockHandler(svc.Territories))

		a.Route("/preaching-days", func(d chi.Router) {
			d.Get("/", api.ListPreachingDaysHandler(svc.PreachingDays))
			d.Post("/", api.CreatePreachingDayHandler(svc.PreachingDays))
			d.Get("/today", api.TodayPreachingDayHandler(svc.PreachingDays))
			d.Get("/{id}", api.GetPreachingDayHandler(svc.PreachingDays))
			d.Put("/{id}", api.UpdatePreachingDayHandler(svc.PreachingDays))
			d.Delete("/{id}", api.DeletePreachingDayHandler(svc.PreachingDays))
			d.Get("/{id}/participations", api.ListDayParticipationsHandler(svc.PreachingDays))
		})

		// The create handler checks the policy itself once the body names the owner.
		a.Post("/participations", api.CreateParticipationHandler(svc.PreachingDays))
		a.Put("/participations/{id}", api.UpdateParticipationHandler(svc.PreachingDays))
		a.Delete("/participations/{id}", api.DeleteParticipationHandler(svc.PreachingDays))

		a.Get("/work-sessions", api.ListWorkSessionsHandler(svc.PreachingDays))
		a.Post("/work-sessions", api.CreateWorkSessionHandler(svc.PreachingDays))
		a.Put("/work-sessions/{id}", api.UpdateWorkSessionHandler(svc.PreachingDays))

		a.Route("/notifications", func(n chi.Router) {
			n.Get("/", api.ListNotificationsHandler(svc.Notifications))
			n.With(middleware.RequirePolicy(auth.ActionCreate, auth.ResourceNotification, "")).
				Post("/", api.CreateNotificationHandler(svc.Notifications))
			n.Get("/stream", api.NotificationStreamHandler(deps.Hub))
			n.Put("/{notificationId}/read", api.MarkNotificationReadHandler(svc.Notifications))
		})
		a.Post("/user-notifications", api.CreateUserNotificationHandler(svc.Notifications))

		a.Route("/users", func(u chi.Router) {
			u.Get("/", api.ListUsersHandler(svc.Users))
			u.With(middleware.RequirePolicy(auth.ActionUpdate, auth.ResourceUser, "id")).
				Patch("/{id}", api.UpdateUserHandler(svc.Users))
			u.With(middleware.RequirePolicy(auth.ActionDelete, auth.ResourceUser, "id")).
				Delete("/{id}", api.DeactivateUserHandler(svc.Users))
			u.With(middleware.RequirePolicy(auth.ActionRead, auth.ResourceUserParticipations, "id")).
				Get("/{id}/participations", api.ListUserParticipationsHandler(svc.PreachingDays))
			u.With(middleware.RequirePolicy(auth.ActionRead, auth.ResourceUserNotifications, "id")).
				Get("/{id}/notifications", api.ListUserNotificationsHandler(svc.Notifications))
		})

		a.Get("/reports/summary", api.ReportSummaryHandler(svc.Reports, deps.Config.Location))
	})
}
