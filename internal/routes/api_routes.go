package routes

import (
	"github.com/go-chi/chi/v5"

	"hangar-next/mxops/internal/api"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers) {

	r.Route("/api/v1", func(v1 chi.Router) {

		v1.Route("/squawks", func(sq chi.Router) {
			sq.Get("/", handlers.ListSquawks())
			sq.Post("/", handlers.CreateSquawk())
			sq.Get("/{id}", handlers.GetSquawk())
			sq.Patch("/{id}", handlers.UpdateSquawk())
			sq.Post("/{id}/defer", handlers.DeferSquawk())
			sq.Post("/{id}/defer/extend", handlers.ExtendDeferral())
			sq.Post("/{id}/defer/clear", handlers.ClearDeferral())
		})

		v1.Route("/deferrals", func(def chi.Router) {
			def.Get("/", handlers.ListDeferrals())
			def.Get("/expiry/{category}", handlers.PreviewDeferralExpiry())
		})

		v1.Route("/workorders", func(wo chi.Router) {
			wo.Get("/", handlers.ListWorkOrders())
			wo.Post("/", handlers.CreateWorkOrder())
			wo.Post("/from-squawks", handlers.CreateWorkOrderFromSquawks())
			wo.Get("/{id}", handlers.GetWorkOrder())
			wo.Patch("/{id}", handlers.UpdateWorkOrder())
			wo.Post("/{id}/assign/{techId}", handlers.AssignTechnician())
		})

		v1.Route("/technicians", func(tech chi.Router) {
			tech.Get("/", handlers.ListTechnicians())
			tech.Post("/", handlers.CreateTechnician())
			tech.Get("/loads", handlers.ListTechnicianLoads())
			tech.Patch("/{id}", handlers.UpdateTechnician())
			tech.Delete("/{id}", handlers.RemoveTechnician())
			tech.Get("/{id}/load", handlers.GetTechnicianLoad())
		})

		v1.Route("/vacations", func(vac chi.Router) {
			vac.Get("/", handlers.ListVacationRequests())
			vac.Post("/", handlers.SubmitVacationRequest())
			vac.Post("/{id}/decision", handlers.DecideVacationRequest())
		})

		v1.Get("/availability", handlers.GetAvailability())
		v1.Get("/analytics/mttr", handlers.GetMTTR())

		v1.Route("/alerts", func(al chi.Router) {
			al.Get("/", handlers.ListAlerts())
			al.Post("/{id}/read", handlers.MarkAlertRead())
		})

		v1.Post("/state/refresh", handlers.RefreshState())
	})
}
