package handlers

import (
	"net/http"

	"github.com/abrezinsky/discscore/internal/services"
)

// matchAction decodes an optional JSON body and runs a scoring action against
// the match named in the URL
func (h *Handlers) matchAction(w http.ResponseWriter, r *http.Request, body interface{}, run func(matchID int) (*services.ActionResult, error)) {
	matchID, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if body != nil {
		if err := decodeJSON(r, body); err != nil {
			respondError(w, err)
			return
		}
	}

	result, err := run(matchID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

func (h *Handlers) handleStartMatch(w http.ResponseWriter, r *http.Request) {
	var req services.StartInput
	h.matchAction(w, r, &req, func(matchID int) (*services.ActionResult, error) {
		return h.Match.StartMatch(r.Context(), matchID, req)
	})
}

func (h *Handlers) handleRecordScore(w http.ResponseWriter, r *http.Request) {
	var req services.ScoreInput
	h.matchAction(w, r, &req, func(matchID int) (*services.ActionResult, error) {
		return h.Match.RecordScore(r.Context(), matchID, req)
	})
}

func (h *Handlers) handleRecordDefense(w http.ResponseWriter, r *http.Request) {
	var req DefenseRequest
	h.matchAction(w, r, &req, func(matchID int) (*services.ActionResult, error) {
		return h.Match.RecordDefense(r.Context(), matchID, req.PlayerID)
	})
}

func (h *Handlers) handleSetPossession(w http.ResponseWriter, r *http.Request) {
	var req PossessionRequest
	h.matchAction(w, r, &req, func(matchID int) (*services.ActionResult, error) {
		return h.Match.SetPossession(r.Context(), matchID, req.OffenseTeamID)
	})
}

func (h *Handlers) handleSetRatio(w http.ResponseWriter, r *http.Request) {
	var req RatioRequest
	h.matchAction(w, r, &req, func(matchID int) (*services.ActionResult, error) {
		return h.Match.SetRatio(r.Context(), matchID, req.Ratio)
	})
}

func (h *Handlers) handleEndMatch(w http.ResponseWriter, r *http.Request) {
	h.matchAction(w, r, nil, func(matchID int) (*services.ActionResult, error) {
		return h.Match.EndMatch(r.Context(), matchID)
	})
}

// handleUndoScore deletes a scoring event and reverses its effect
func (h *Handlers) handleUndoScore(w http.ResponseWriter, r *http.Request) {
	scoreID, err := parseIntParam(r, "scoreID")
	if err != nil {
		respondError(w, err)
		return
	}
	h.matchAction(w, r, nil, func(matchID int) (*services.ActionResult, error) {
		return h.Match.UndoScore(r.Context(), matchID, scoreID)
	})
}
