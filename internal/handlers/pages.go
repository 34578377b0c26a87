package handlers

import (
	"net/http"

	"github.com/abrezinsky/discscore/internal/auth"
)

const (
	publicLayout = "public"
	adminLayout  = "admin"
)

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.Index, publicLayout, PageData{Title: "Matches", ActiveNav: "matches"})
}

func (h *Handlers) handleMatchPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := h.Match.GetMatch(r.Context(), id); err != nil {
		http.NotFound(w, r)
		return
	}
	h.render(w, h.templates.Match, publicLayout, PageData{Title: "Live Match", ActiveNav: "matches", MatchID: id})
}

func (h *Handlers) handleStandingsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.Standings, publicLayout, PageData{Title: "Standings", ActiveNav: "standings"})
}

func (h *Handlers) handleLeaderboardPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.Leaderboard, publicLayout, PageData{Title: "Leaderboard", ActiveNav: "leaderboard"})
}

func (h *Handlers) handleSpiritPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.Spirit, publicLayout, PageData{Title: "Spirit Scores", ActiveNav: "spirit"})
}

// adminPage fills in the fields shared by every admin page
func adminPage(r *http.Request, title, nav string) PageData {
	data := PageData{Title: title, PageTitle: title, ActiveNav: nav}
	if id, ok := auth.FromContext(r.Context()); ok {
		data.Username = id.Username
	}
	return data
}

func (h *Handlers) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.AdminDashboard, adminLayout, adminPage(r, "Dashboard", "dashboard"))
}

func (h *Handlers) handleAdminTeams(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.AdminTeams, adminLayout, adminPage(r, "Teams", "teams"))
}

func (h *Handlers) handleAdminPlayers(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.AdminPlayers, adminLayout, adminPage(r, "Players", "players"))
}

func (h *Handlers) handleAdminMatches(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.AdminMatches, adminLayout, adminPage(r, "Matches", "matches"))
}

func (h *Handlers) handleAdminImport(w http.ResponseWriter, r *http.Request) {
	h.render(w, h.templates.AdminImport, adminLayout, adminPage(r, "Import Roster", "import"))
}

// handleAdminScoring renders the live scoring console for one match
func (h *Handlers) handleAdminScoring(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	m, err := h.Match.GetMatch(r.Context(), id)
	if err != nil {
		http.Redirect(w, r, "/admin/matches", http.StatusFound)
		return
	}
	data := adminPage(r, m.Team1Name+" vs "+m.Team2Name, "matches")
	data.MatchID = id
	h.render(w, h.templates.AdminScoring, adminLayout, data)
}
