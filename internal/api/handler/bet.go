package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/betdesk/internal/api/apierr"
	"github.com/mcoot/betdesk/internal/api/request"
	"github.com/mcoot/betdesk/internal/api/response"
	"github.com/mcoot/betdesk/internal/services/access"
)

// BetHandler handles bet ledger endpoints
type BetHandler struct {
	engine *access.Service
}

// NewBetHandler creates a new bet handler
func NewBetHandler(engine *access.Service) *BetHandler {
	return &BetHandler{
		engine: engine,
	}
}

// Place handles POST /api/v1/bets
func (h *BetHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	bet, err := h.engine.PlaceBet(r.Context(), req.Name)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.BetFromModel(bet))
}

// List handles GET /api/v1/bets
func (h *BetHandler) List(w http.ResponseWriter, r *http.Request) {
	bets, err := h.engine.ListPlacedBets(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BetsFromModel(bets))
}
