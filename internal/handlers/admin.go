package handlers

import (
	"fmt"
	"net/http"
	"strings"
)

// ==================== Teams & Seeding ====================

func (h *Handlers) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Team.CreateTeam(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, IDResponse{ID: id})
}

func (h *Handlers) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Team.DeleteTeam(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

func (h *Handlers) handleGetSeedings(w http.ResponseWriter, r *http.Request) {
	seedings, err := h.Team.ListSeedings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, SeedingsResponse{Seedings: seedings})
}

func (h *Handlers) handleUpdateSeedings(w http.ResponseWriter, r *http.Request) {
	var req SeedingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Team.UpdateSeedings(r.Context(), req.Seedings); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Seedings updated")
}

// ==================== Players ====================

func (h *Handlers) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Player.CreatePlayer(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, IDResponse{ID: id})
}

func (h *Handlers) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Player.DeletePlayer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// ==================== Matches ====================

func (h *Handlers) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Match.CreateMatch(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, IDResponse{ID: id})
}

func (h *Handlers) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Match.DeleteMatch(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

func (h *Handlers) handleUpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req MatchStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Match.UpdateMatchStatus(r.Context(), id, req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Match status updated")
}

// handleGetMatchScores returns the full event log of a match, newest first
func (h *Handlers) handleGetMatchScores(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	scores, err := h.Match.ListScores(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, scores)
}

// handleGetMatchQR returns a PNG QR code linking to the public live page
func (h *Handlers) handleGetMatchQR(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := h.Match.LivePageQR(r.Context(), id, h.baseURL(r))
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "max-age=3600")
	w.Write(png)
}

// baseURL prefers the configured public address and falls back to the request's host
func (h *Handlers) baseURL(r *http.Request) string {
	if h.Options.BaseURL != "" {
		return strings.TrimSuffix(h.Options.BaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// ==================== Dashboard & Spirit ====================

func (h *Handlers) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.Admin.Dashboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, dash)
}

// handleGetSpiritScores lists submitted spirit scores, optionally for one receiving team
func (h *Handlers) handleGetSpiritScores(w http.ResponseWriter, r *http.Request) {
	teamID, err := parseIntQuery(r, "team")
	if err != nil {
		respondError(w, err)
		return
	}

	if teamID > 0 {
		scores, err := h.Spirit.ListForTeam(r.Context(), teamID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondOK(w, scores)
		return
	}

	scores, err := h.Spirit.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, scores)
}
