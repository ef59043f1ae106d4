package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) listAlertRules(w http.ResponseWriter, _ *http.Request) {
	rules := mapSlice(a.deps.AlertRules.ListAlertRules(), toAlertRuleResponse)
	writeJSON(w, http.StatusOK, map[string][]alertRuleResponse{"rules": rules})
}

func (a *API) createAlertRule(w http.ResponseWriter, r *http.Request) {
	var req alertRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	rule, err := a.deps.AlertRules.AddAlertRule(r.Context(), req.toRule())
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusCreated, toAlertRuleResponse(rule))
}

func (a *API) getAlertRule(w http.ResponseWriter, r *http.Request) {
	rule, err := a.deps.AlertRules.GetAlertRule(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, toAlertRuleResponse(rule))
}

func (a *API) updateAlertRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req alertRuleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	if req.ID != "" && req.ID != id {
		writeError(w, r, a.logger, fmt.Errorf("%w: body id %q does not match path id %q", errBadRequest, req.ID, id))

		return
	}

	req.ID = id
	rule := req.toRule()

	if err := a.deps.AlertRules.UpdateAlertRule(r.Context(), rule); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, toAlertRuleResponse(rule))
}

func (a *API) deleteAlertRule(w http.ResponseWriter, r *http.Request) {
	if err := a.deps.AlertRules.RemoveAlertRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, a.logger, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
