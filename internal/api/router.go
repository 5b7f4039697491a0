package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teamdash/teamdash/internal/api/handler"
	"github.com/teamdash/teamdash/internal/api/middleware"
	"github.com/teamdash/teamdash/internal/dashboard"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Service  *dashboard.Service
	Version  string
	Registry *prometheus.Registry
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	if deps.Registry != nil {
		metrics := middleware.NewMetrics(deps.Registry)
		r.Use(metrics.Handler)
		r.Method("GET", "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Get("/health", handler.NewHealthHandler(deps.Version).ServeHTTP)

	projects := handler.NewProjectHandler(deps.Service)
	projectMembers := handler.NewProjectMemberHandler(deps.Service)
	issues := handler.NewIssueHandler(deps.Service)
	members := handler.NewMemberHandler(deps.Service)
	assignments := handler.NewAssignmentHandler(deps.Service)
	certifications := handler.NewCertificationHandler(deps.Service)
	memberPOCs := handler.NewMemberPOCHandler(deps.Service)
	tasks := handler.NewTaskHandler(deps.Service)
	standalonePOCs := handler.NewStandalonePOCHandler(deps.Service)
	analytics := handler.NewAnalyticsHandler(deps.Service)
	reports := handler.NewReportHandler(deps.Service)

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projects.List)
			r.Post("/", projects.Create)
			r.Get("/{id}", projects.Get)
			r.Patch("/{id}", projects.Update)
			r.Delete("/{id}", projects.Delete)

			r.Route("/{id}/members", func(r chi.Router) {
				r.Get("/", projectMembers.List)
				r.Post("/", projectMembers.Add)
				r.Patch("/{memberId}", projectMembers.Update)
				r.Delete("/{memberId}", projectMembers.Remove)
			})

			r.Get("/{id}/issues", issues.ListForProject)
			r.Post("/{id}/issues", issues.Create)
		})

		r.Route("/issues", func(r chi.Router) {
			r.Get("/{id}", issues.Get)
			r.Patch("/{id}", issues.Update)
			r.Delete("/{id}", issues.Delete)
		})

		r.Route("/team-members", func(r chi.Router) {
			r.Get("/", members.List)
			r.Post("/", members.Create)
			r.Get("/{id}", members.Get)
			r.Patch("/{id}", members.Update)
			r.Delete("/{id}", members.Delete)
			r.Get("/{id}/projects", members.ListProjects)

			r.Route("/{id}/interns", func(r chi.Router) {
				r.Get("/", assignments.List)
				r.Post("/", assignments.Create)
				r.Put("/", assignments.Replace)
				r.Delete("/{internId}", assignments.Delete)
			})

			r.Get("/{id}/certifications", certifications.ListForMember)
			r.Post("/{id}/certifications", certifications.Create)
			r.Get("/{id}/pocs", memberPOCs.ListForMember)
			r.Post("/{id}/pocs", memberPOCs.Create)
			r.Get("/{id}/tasks", tasks.ListForMember)
			r.Post("/{id}/tasks", tasks.Create)
		})

		r.Route("/certifications", func(r chi.Router) {
			r.Patch("/{id}", certifications.Update)
			r.Delete("/{id}", certifications.Delete)
		})

		r.Route("/pocs", func(r chi.Router) {
			r.Patch("/{id}", memberPOCs.Update)
			r.Delete("/{id}", memberPOCs.Delete)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Patch("/{id}", tasks.Update)
			r.Delete("/{id}", tasks.Delete)
		})

		r.Route("/standalone-pocs", func(r chi.Router) {
			r.Get("/", standalonePOCs.List)
			r.Post("/", standalonePOCs.Create)
			r.Get("/{id}", standalonePOCs.Get)
			r.Patch("/{id}", standalonePOCs.Update)
			r.Delete("/{id}", standalonePOCs.Delete)

			r.Route("/{id}/members", func(r chi.Router) {
				r.Get("/", standalonePOCs.ListMembers)
				r.Post("/", standalonePOCs.AddMember)
				r.Patch("/{memberId}", standalonePOCs.UpdateMember)
				r.Delete("/{memberId}", standalonePOCs.RemoveMember)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", analytics.Summary)
			r.Get("/by-type", analytics.ByType)
			r.Get("/by-status", analytics.ByStatus)
			r.Get("/team-workload", analytics.TeamWorkload)
			r.Get("/timeline", analytics.Timeline)
			r.Get("/issue-stats", analytics.IssueStats)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/generate", reports.Generate)
			r.Post("/summary", reports.Summary)
		})
	})

	return r
}
