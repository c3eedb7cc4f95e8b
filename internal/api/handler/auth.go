package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/betdesk/internal/api/apierr"
	"github.com/mcoot/betdesk/internal/api/request"
	"github.com/mcoot/betdesk/internal/api/response"
	"github.com/mcoot/betdesk/internal/model"
	"github.com/mcoot/betdesk/internal/services/access"
)

// AuthHandler handles registration and session endpoints
type AuthHandler struct {
	engine *access.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(engine *access.Service) *AuthHandler {
	return &AuthHandler{
		engine: engine,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	user, err := h.engine.Register(r.Context(), role, req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UserFromModel(user))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password is required"))
		return
	}

	user, err := h.engine.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Session{User: response.UserFromModel(user)})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.engine.Logout()
	response.NoContent(w)
}

// Session handles GET /api/v1/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := h.engine.CurrentUser()
	if user == nil {
		apierr.WriteError(w, apierr.NewNotLoggedInError())
		return
	}

	response.JSON(w, http.StatusOK, response.Session{User: response.UserFromModel(user)})
}
