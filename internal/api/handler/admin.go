package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/betdesk/internal/api/apierr"
	"github.com/mcoot/betdesk/internal/api/response"
	"github.com/mcoot/betdesk/internal/services/access"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	engine *access.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(engine *access.Service) *AdminHandler {
	return &AdminHandler{
		engine: engine,
	}
}

// ListRegularUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListRegularUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.engine.ListRegularUsers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModel(users))
}

// BanUser handles POST /api/v1/admin/users/{username}/ban
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}

	if err := h.engine.BanUser(r.Context(), username); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
