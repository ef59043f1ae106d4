package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) listPolicies(w http.ResponseWriter, _ *http.Request) {
	policies := mapSlice(a.deps.Policies.GetAllPolicies(), toPolicyResponse)
	writeJSON(w, http.StatusOK, map[string][]policyResponse{"policies": policies})
}

func (a *API) createPolicy(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	policy, err := a.deps.Policies.AddScalingPolicy(r.Context(), req.toPolicy())
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusCreated, toPolicyResponse(policy))
}

func (a *API) getPolicy(w http.ResponseWriter, r *http.Request) {
	policy, err := a.deps.Policies.GetScalingPolicy(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, toPolicyResponse(policy))
}

func (a *API) updatePolicy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req policyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	if req.ID != "" && req.ID != id {
		writeError(w, r, a.logger, fmt.Errorf("%w: body id %q does not match path id %q", errBadRequest, req.ID, id))

		return
	}

	req.ID = id

	if err := a.deps.Policies.UpdateScalingPolicy(r.Context(), req.toPolicy()); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	// defaults are applied by the registry
	policy, err := a.deps.Policies.GetScalingPolicy(id)
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, toPolicyResponse(policy))
}

func (a *API) deletePolicy(w http.ResponseWriter, r *http.Request) {
	if err := a.deps.Policies.RemoveScalingPolicy(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
