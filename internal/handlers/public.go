package handlers

import (
	"net/http"

	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/services"
)

const homeLeaderboardSize = 10

// handleHome returns recent matches and the top of both leaderboards
func (h *Handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	matches, err := h.Match.ListMatches(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	board, err := h.Leaderboard.Get(r.Context(), services.LeaderboardQuery{Limit: homeLeaderboardSize})
	if err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, HomeResponse{Matches: matches, Scoring: board.Scoring, Assists: board.Assists})
}

// handleGetMatches lists matches, optionally filtered by ?status=
func (h *Handlers) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	var (
		matches []models.Match
		err     error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		matches, err = h.Match.ListMatchesByStatus(r.Context(), status)
	} else {
		matches, err = h.Match.ListMatches(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, matches)
}

func (h *Handlers) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	m, err := h.Match.GetMatch(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, m)
}

// handleGetLiveScore is the polling endpoint for live viewers
func (h *Handlers) handleGetLiveScore(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	live, err := h.Match.LiveScore(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	respondOK(w, live)
}

func (h *Handlers) handleGetRatio(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	info, err := h.Match.CurrentRatio(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, info)
}

func (h *Handlers) handleGetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.Standings.All(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, standings)
}

func (h *Handlers) handleGetSpiritStandings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Standings.Spirit(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rows)
}

// handleGetLeaderboard accepts optional ?team= and ?limit= filters
func (h *Handlers) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	teamID, err := parseIntQuery(r, "team")
	if err != nil {
		respondError(w, err)
		return
	}
	limit, err := parseIntQuery(r, "limit")
	if err != nil {
		respondError(w, err)
		return
	}

	board, err := h.Leaderboard.Get(r.Context(), services.LeaderboardQuery{TeamID: teamID, Limit: limit})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, board)
}

func (h *Handlers) handleGetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Team.ListTeams(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}

// handleGetPlayers lists players, optionally for one team via ?team=
func (h *Handlers) handleGetPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := parseIntQuery(r, "team")
	if err != nil {
		respondError(w, err)
		return
	}

	var filter *int
	if teamID > 0 {
		filter = &teamID
	}
	players, err := h.Player.ListPlayers(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, players)
}

// handleSubmitSpirit records one team's rating of its opponent
func (h *Handlers) handleSubmitSpirit(w http.ResponseWriter, r *http.Request) {
	var req services.SpiritInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Spirit.Submit(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, IDResponse{ID: id})
}
