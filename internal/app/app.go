package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/abrezinsky/discscore/internal/auth"
	"github.com/abrezinsky/discscore/internal/handlers"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/internal/repository"
	"github.com/abrezinsky/discscore/internal/services"
	"github.com/abrezinsky/discscore/internal/websocket"
)

const shutdownTimeout = 10 * time.Second

// Options configures a new App
type Options struct {
	DBPath      string
	BaseURL     string
	CORSOrigins []string
}

// App holds all application dependencies
type App struct {
	log       logger.Logger
	handlers  *handlers.Handlers
	repo      *repository.Repository
	admin     *services.AdminService
	hub       *websocket.Hub
	stopHub   context.CancelFunc
	closeOnce sync.Once
}

// New creates and initializes a new application instance
func New(log logger.Logger, opts Options, templatesFS, staticFS fs.FS) (*App, error) {
	repo, err := repository.New(opts.DBPath)
	if err != nil {
		return nil, err
	}

	// Initialize services
	svc := handlers.Services{
		Team:        services.NewTeamService(log, repo),
		Player:      services.NewPlayerService(log, repo),
		Standings:   services.NewStandingsService(log, repo),
		Leaderboard: services.NewLeaderboardService(log, repo),
		Spirit:      services.NewSpiritService(log, repo),
		Import:      services.NewImportService(log, repo),
	}
	matchService := services.NewMatchService(log, repo)
	adminService := services.NewAdminService(log, repo)
	svc.Match = matchService
	svc.Admin = adminService

	// The hub snapshots live scores from the match service, which in turn
	// broadcasts every scoring action through the hub
	hub := websocket.New(log, matchService)
	ctx, cancel := context.WithCancel(context.Background())
	hub.Start(ctx)
	matchService.SetBroadcaster(hub)

	staticServer := handlers.NewStaticServer(staticFS)

	h, err := handlers.New(
		svc,
		templatesFS,
		staticServer,
		auth.New(adminService),
		hub,
		log,
		handlers.Options{BaseURL: opts.BaseURL, CORSOrigins: opts.CORSOrigins},
	)
	if err != nil {
		cancel()
		repo.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		log:      log,
		handlers: h,
		repo:     repo,
		admin:    adminService,
		hub:      hub,
		stopHub:  cancel,
	}, nil
}

// EnsureAdmin creates the first admin account if the database has none.
// It returns the password when an account was created.
func (a *App) EnsureAdmin(ctx context.Context, username, password string) (string, error) {
	return a.admin.EnsureDefaultAdmin(ctx, username, password)
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close stops the websocket hub and closes the database. Safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.stopHub != nil {
			a.stopHub()
		}
		if err := a.repo.Close(); err != nil {
			a.log.Warn("Failed to close database", "error", err)
		}
	})
}

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	baseURL := a.defaultBaseURL(ln.Addr())
	a.log.Info("Server starting", "url", baseURL)
	a.log.Info("Admin URL", "url", baseURL+"/admin")

	srv := &http.Server{
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// defaultBaseURL fills in the public base URL from the detected LAN address
// when none was configured. QR codes printed for the field point here.
func (a *App) defaultBaseURL(addr net.Addr) string {
	if a.handlers.Options.BaseURL != "" {
		return strings.TrimSuffix(a.handlers.Options.BaseURL, "/")
	}

	port := ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = fmt.Sprintf(":%d", tcp.Port)
	}
	baseURL := "http://" + getPreferredIP(realNetworkProvider{}) + port
	a.handlers.Options.BaseURL = baseURL
	a.log.Info("Default base URL set", "url", baseURL)
	return baseURL
}

// networkInterface wraps net.Interface for testing
type networkInterface interface {
	Flags() net.Flags
	Addrs() ([]net.Addr, error)
}

type realInterface struct {
	iface net.Interface
}

func (r realInterface) Flags() net.Flags {
	return r.iface.Flags
}

func (r realInterface) Addrs() ([]net.Addr, error) {
	return r.iface.Addrs()
}

// networkProvider lists network interfaces
type networkProvider interface {
	Interfaces() ([]networkInterface, error)
}

type realNetworkProvider struct{}

func (realNetworkProvider) Interfaces() ([]networkInterface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	result := make([]networkInterface, len(ifaces))
	for i, iface := range ifaces {
		result[i] = realInterface{iface: iface}
	}
	return result, nil
}

// getPreferredIP returns the best IPv4 address for phones on the same field network.
// Private addresses win over public ones; localhost is the last resort.
func getPreferredIP(provider networkProvider) string {
	ifaces, err := provider.Interfaces()
	if err != nil {
		return "localhost"
	}

	var fallback string
	for _, iface := range ifaces {
		flags := iface.Flags()
		if flags&net.FlagUp == 0 || flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ip := addrIP(addr)
			if ip == nil || ip.To4() == nil || ip.IsLoopback() {
				continue
			}
			if ip.IsPrivate() {
				return ip.String()
			}
			if fallback == "" {
				fallback = ip.String()
			}
		}
	}

	if fallback != "" {
		return fallback
	}
	return "localhost"
}

func addrIP(addr net.Addr) net.IP {
	switch v := addr.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	}
	return nil
}
