package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/abrezinsky/discscore/internal/auth"
	"github.com/abrezinsky/discscore/internal/models"
	"github.com/abrezinsky/discscore/internal/services"
	"github.com/abrezinsky/discscore/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// PageData holds the data passed to page templates. Pages load their
// content from the JSON API.
type PageData struct {
	Title     string
	PageTitle string
	ActiveNav string
	MatchID   int
	Username  string
	Stages    []string
	Ratios    []string
}

// Templates holds all parsed HTML templates
type Templates struct {
	Index          *template.Template
	Match          *template.Template
	Standings      *template.Template
	Leaderboard    *template.Template
	Spirit         *template.Template
	AdminLogin     *template.Template
	AdminDashboard *template.Template
	AdminTeams     *template.Template
	AdminPlayers   *template.Template
	AdminMatches   *template.Template
	AdminScoring   *template.Template
	AdminImport    *template.Template
}

// Services bundles the services used by the handlers
type Services struct {
	Team        services.TeamServicer
	Player      services.PlayerServicer
	Match       services.MatchServicer
	Standings   services.StandingsServicer
	Leaderboard services.LeaderboardServicer
	Spirit      services.SpiritServicer
	Import      services.ImportServicer
	Admin       services.AdminServicer
}

// Options configures the router
type Options struct {
	// BaseURL is the public address used in match QR codes. Empty means
	// the address of the incoming request.
	BaseURL     string
	CORSOrigins []string
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Team         services.TeamServicer
	Player       services.PlayerServicer
	Match        services.MatchServicer
	Standings    services.StandingsServicer
	Leaderboard  services.LeaderboardServicer
	Spirit       services.SpiritServicer
	Import       services.ImportServicer
	Admin        services.AdminServicer
	Auth         *auth.Auth
	Hub          *websocket.Hub
	Log          HTTPLogger
	Options      Options
	templates    *Templates
	staticServer http.Handler
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// New creates a new Handlers instance with all dependencies
func New(
	svc Services,
	templatesFS fs.FS,
	staticServer http.Handler,
	adminAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
	opts Options,
) (*Handlers, error) {
	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	h := newHandlers(svc, adminAuth, log, opts)
	h.Hub = hub
	h.templates = templates
	h.staticServer = staticServer
	return h, nil
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// NewForTesting creates a Handlers instance without templates or a hub (for testing API endpoints)
func NewForTesting(svc Services, adminAuth *auth.Auth) *Handlers {
	return newHandlers(svc, adminAuth, NoopHTTPLogger{}, Options{CORSOrigins: []string{"*"}})
}

func newHandlers(svc Services, adminAuth *auth.Auth, log HTTPLogger, opts Options) *Handlers {
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	return &Handlers{
		Team:        svc.Team,
		Player:      svc.Player,
		Match:       svc.Match,
		Standings:   svc.Standings,
		Leaderboard: svc.Leaderboard,
		Spirit:      svc.Spirit,
		Import:      svc.Import,
		Admin:       svc.Admin,
		Auth:        adminAuth,
		Log:         log,
		Options:     opts,
	}
}

// loadTemplates parses all templates once at startup
func loadTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{}

	public := []struct {
		dst  **template.Template
		file string
	}{
		{&t.Index, "index.html"},
		{&t.Match, "match.html"},
		{&t.Standings, "standings.html"},
		{&t.Leaderboard, "leaderboard.html"},
		{&t.Spirit, "spirit.html"},
	}
	for _, p := range public {
		tmpl, err := template.ParseFS(templatesFS, "layout.html", p.file)
		if err != nil {
			return nil, fmt.Errorf("%s template: %w", p.file, err)
		}
		*p.dst = tmpl
	}

	var err error
	if t.AdminLogin, err = template.ParseFS(templatesFS, "admin/login.html"); err != nil {
		return nil, fmt.Errorf("admin login template: %w", err)
	}

	admin := []struct {
		dst  **template.Template
		file string
	}{
		{&t.AdminDashboard, "admin/dashboard.html"},
		{&t.AdminTeams, "admin/teams.html"},
		{&t.AdminPlayers, "admin/players.html"},
		{&t.AdminMatches, "admin/matches.html"},
		{&t.AdminScoring, "admin/scoring.html"},
		{&t.AdminImport, "admin/import.html"},
	}
	for _, p := range admin {
		tmpl, err := template.ParseFS(templatesFS, "admin/layout.html", p.file)
		if err != nil {
			return nil, fmt.Errorf("%s template: %w", p.file, err)
		}
		*p.dst = tmpl
	}

	return t, nil
}

// render executes a layout-based page template
func (h *Handlers) render(w http.ResponseWriter, tmpl *template.Template, layout string, data PageData) {
	if data.Stages == nil {
		data.Stages = models.Stages
	}
	if data.Ratios == nil {
		data.Ratios = []string{models.RatioGirls, models.RatioBoys}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, layout, data); err != nil {
		InternalError(fmt.Errorf("render %s: %w", data.ActiveNav, err))
	}
}
