package httpserver

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
)

// APIDeps are the components the REST API reads and drives. Schedules may be nil.
type APIDeps struct {
	Metrics    MetricStore
	AlertRules AlertRules
	Policies   Policies
	Scaler     Scaler
	Instances  InstanceLister
	Actions    ActionLister
	Schedules  ScheduleLister
}

// API serves the autoscaler REST resources below /api/v1.
type API struct {
	logger *slog.Logger
	deps   APIDeps
	now    func() time.Time
}

// NewAPI creates the REST API handlers.
func NewAPI(logger *slog.Logger, deps APIDeps) *API {
	return &API{
		logger: logger.With("component", "http-api"),
		deps:   deps,
		now:    time.Now,
	}
}

var _ routeMounter = (*API)(nil)

// Mount registers the API routes on r.
func (a *API) Mount(r chi.Router) {
	r.Route("/metrics", func(r chi.Router) {
		r.Get("/", a.listMetrics)
		r.Post("/", a.recordMetric)
		r.Get("/{name}", a.getMetric)
		r.Get("/{name}/{aggregation}", a.aggregateMetric)
	})

	r.Route("/alert-rules", func(r chi.Router) {
		r.Get("/", a.listAlertRules)
		r.Post("/", a.createAlertRule)
		r.Get("/{id}", a.getAlertRule)
		r.Put("/{id}", a.updateAlertRule)
		r.Delete("/{id}", a.deleteAlertRule)
	})

	r.Route("/policies", func(r chi.Router) {
		r.Get("/", a.listPolicies)
		r.Post("/", a.createPolicy)
		r.Get("/{id}", a.getPolicy)
		r.Put("/{id}", a.updatePolicy)
		r.Delete("/{id}", a.deletePolicy)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/", a.listServices)
		r.Get("/{service}/instances", a.listInstances)
		r.Post("/{service}/scale-up", a.scaleUp)
		r.Post("/{service}/scale-down", a.scaleDown)
		r.Post("/{service}/desired", a.setDesired)
	})

	r.Route("/actions", func(r chi.Router) {
		r.Get("/", a.listActions)
		r.Get("/{id}", a.getAction)
	})

	r.Get("/schedules", a.listSchedules)
}
