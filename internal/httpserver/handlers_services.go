package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skillcoder/telemetry-autoscaler/internal/logic/instances"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/scaling"
	"github.com/skillcoder/telemetry-autoscaler/internal/logic/schedule"
)

type scaleFunc func(ctx context.Context, service string, n int) (scaling.Action, error)

func (a *API) listServices(w http.ResponseWriter, _ *http.Request) {
	services := a.deps.Instances.Services()
	if services == nil {
		services = []string{}
	}

	writeJSON(w, http.StatusOK, servicesResponse{Services: services})
}

func (a *API) listInstances(w http.ResponseWriter, r *http.Request) {
	service := chi.URLParam(r, "service")

	list := a.deps.Instances.GetServiceInstances(service)
	if list == nil {
		list = []instances.Instance{}
	}

	lo, hi := a.deps.Scaler.Bounds(service)

	writeJSON(w, http.StatusOK, serviceInstancesResponse{
		Service:      service,
		Count:        a.deps.Instances.GetServiceInstanceCount(service),
		Healthy:      a.deps.Instances.GetHealthyInstanceCount(service),
		MinInstances: lo,
		MaxInstances: hi,
		Instances:    list,
	})
}

func (a *API) scaleUp(w http.ResponseWriter, r *http.Request) {
	a.scale(w, r, a.deps.Scaler.ScaleUp, 1)
}

func (a *API) scaleDown(w http.ResponseWriter, r *http.Request) {
	a.scale(w, r, a.deps.Scaler.ScaleDown, 1)
}

func (a *API) setDesired(w http.ResponseWriter, r *http.Request) {
	a.scale(w, r, a.deps.Scaler.SetDesiredInstances, -1)
}

// scale reads {"count": n} and applies fn. A negative defaultCount makes count required.
func (a *API) scale(w http.ResponseWriter, r *http.Request, fn scaleFunc, defaultCount int) {
	var req scaleRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, a.logger, err)

		return
	}

	count := defaultCount
	if req.Count != nil {
		count = *req.Count
	}

	if count < 0 {
		writeError(w, r, a.logger, fmt.Errorf("%w: count is required", errBadRequest))

		return
	}

	action, err := fn(r.Context(), chi.URLParam(r, "service"), count)
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusAccepted, action)
}

func (a *API) listActions(w http.ResponseWriter, r *http.Request) {
	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))

	var actions []scaling.Action
	if all {
		actions = a.deps.Actions.ListActions()
	} else {
		actions = a.deps.Actions.GetActiveScalingActions()
	}

	if actions == nil {
		actions = []scaling.Action{}
	}

	writeJSON(w, http.StatusOK, actionsResponse{Actions: actions})
}

func (a *API) getAction(w http.ResponseWriter, r *http.Request) {
	action, err := a.deps.Actions.GetAction(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, action)
}

func (a *API) listSchedules(w http.ResponseWriter, _ *http.Request) {
	entries := []schedule.Status{}
	if a.deps.Schedules != nil {
		entries = append(entries, a.deps.Schedules.Entries()...)
	}

	writeJSON(w, http.StatusOK, schedulesResponse{Schedules: entries})
}
