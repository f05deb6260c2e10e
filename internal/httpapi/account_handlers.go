package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"taskhive.org/internal/audit"
	"taskhive.org/internal/auth"
)

type updateAccountRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

func (a *API) handleAccountsCollection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, a.auth.Directory().List())
}

func (a *API) handleAccountResource(w http.ResponseWriter, r *http.Request) {
	raw := strings.Trim(strings.TrimPrefix(r.URL.Path, "/users/"), "/")
	if raw == "" || strings.Contains(raw, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "user id must be an integer")
		return
	}

	switch r.Method {
	case http.MethodGet:
		acc, ok := a.auth.Directory().Find(id)
		if !ok {
			writeError(w, r, http.StatusNotFound, "user not found")
			return
		}
		writeJSON(w, http.StatusOK, acc)
	case http.MethodPut:
		a.updateAccount(w, r, id)
	case http.MethodDelete:
		if err := a.auth.DeleteAccount(id); err != nil {
			handleAuthError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "users.delete", map[string]any{"id": id})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) updateAccount(w http.ResponseWriter, r *http.Request, id int) {
	var req updateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name must not be blank")
		return
	}

	acc, err := a.auth.Directory().Update(id, auth.AccountUpdate{
		Name: req.Name,
		Role: req.Role,
	})
	if err != nil {
		handleAuthError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "users.update", map[string]any{"id": id})
	writeJSON(w, http.StatusOK, acc)
}
