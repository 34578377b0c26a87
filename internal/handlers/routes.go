package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Static files and pages
	if h.staticServer != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))
	}
	r.Get("/", h.handleIndex)
	r.Get("/match/{id}", h.handleMatchPage)
	r.Get("/standings", h.handleStandingsPage)
	r.Get("/leaderboard", h.handleLeaderboardPage)
	r.Get("/spirit", h.handleSpiritPage)

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Public API, readable from other origins
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.Options.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/api/home", h.handleHome)
		r.Get("/api/matches", h.handleGetMatches)
		r.Get("/api/matches/{id}", h.handleGetMatch)
		r.Get("/api/matches/{id}/scores", h.handleGetLiveScore)
		r.Get("/api/matches/{id}/ratio", h.handleGetRatio)
		r.Get("/api/standings", h.handleGetStandings)
		r.Get("/api/standings/spirit", h.handleGetSpiritStandings)
		r.Get("/api/leaderboard", h.handleGetLeaderboard)
		r.Get("/api/teams", h.handleGetTeams)
		r.Get("/api/players", h.handleGetPlayers)
		r.Post("/api/spirit", h.handleSubmitSpirit)

		// Preflight requests are answered by the cors middleware
		r.Options("/api/*", func(w http.ResponseWriter, r *http.Request) {})
	})

	// Auth routes (public)
	r.Get("/admin/login", h.handleLoginPage)
	r.Post("/admin/login", h.handleLogin)
	r.Post("/admin/logout", h.handleLogout)
	r.Get("/admin/logout", h.handleLogout)

	// Admin pages (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuth)
		r.Get("/admin", h.handleAdminDashboard)
		r.Get("/admin/teams", h.handleAdminTeams)
		r.Get("/admin/players", h.handleAdminPlayers)
		r.Get("/admin/matches", h.handleAdminMatches)
		r.Get("/admin/import", h.handleAdminImport)
		r.Get("/admin/scoring/{id}", h.handleAdminScoring)
	})

	// Admin API (protected)
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)

		r.Get("/dashboard", h.handleGetDashboard)
		r.Get("/whoami", h.handleWhoAmI)
		r.Put("/password", h.handleChangePassword)

		// Teams and seeding
		r.Get("/teams", h.handleGetTeams)
		r.Post("/teams", h.handleCreateTeam)
		r.Delete("/teams/{id}", h.handleDeleteTeam)
		r.Get("/seedings", h.handleGetSeedings)
		r.Put("/seedings", h.handleUpdateSeedings)

		// Players
		r.Get("/players", h.handleGetPlayers)
		r.Post("/players", h.handleCreatePlayer)
		r.Delete("/players/{id}", h.handleDeletePlayer)

		// Matches
		r.Get("/matches", h.handleGetMatches)
		r.Post("/matches", h.handleCreateMatch)
		r.Get("/matches/{id}", h.handleGetMatch)
		r.Delete("/matches/{id}", h.handleDeleteMatch)
		r.Put("/matches/{id}/status", h.handleUpdateMatchStatus)
		r.Get("/matches/{id}/scores", h.handleGetMatchScores)
		r.Get("/matches/{id}/qr", h.handleGetMatchQR)

		// Live scoring
		r.Post("/matches/{id}/start", h.handleStartMatch)
		r.Post("/matches/{id}/score", h.handleRecordScore)
		r.Post("/matches/{id}/defense", h.handleRecordDefense)
		r.Post("/matches/{id}/possession", h.handleSetPossession)
		r.Post("/matches/{id}/ratio", h.handleSetRatio)
		r.Post("/matches/{id}/end", h.handleEndMatch)
		r.Delete("/matches/{id}/scores/{scoreID}", h.handleUndoScore)

		// Import
		r.Post("/import/excel", h.handleImportExcel)
		r.Post("/import/csv", h.handleImportCSV)
		r.Get("/import/template", h.handleImportTemplate)

		// Spirit
		r.Get("/spirit", h.handleGetSpiritScores)
	})

	return r
}
