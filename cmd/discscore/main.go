package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/abrezinsky/discscore/internal/app"
	"github.com/abrezinsky/discscore/internal/config"
	"github.com/abrezinsky/discscore/internal/logger"
	"github.com/abrezinsky/discscore/web"
)

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

var (
	version = "dev"
)

// showBanner prints the startup logo
func showBanner() {
	logo := []string{
		`    ____  _           ____                      `,
		`   / __ \(_)_____________  _________  ________ `,
		`  / / / / / ___/ ___/\__ \/ ___/ __ \/ ___/ _ \`,
		` / /_/ / (__  ) /__ ___/ / /__/ /_/ / /  /  __/`,
		`/_____/_/____/\___//____/\___/\____/_/   \___/ `,
	}
	width := len(logo[0]) + 4
	border := strings.Repeat("═", width)

	fmt.Printf("\n  %s╔%s╗%s\n", cyan, border, reset)
	for _, line := range logo {
		fmt.Printf("  %s║%s  %-*s  %s║%s\n", cyan, yellow, width-4, line, cyan, reset)
	}
	fmt.Printf("  %s╚%s╝%s\n\n", cyan, border, reset)
}

// cycleLogLevel cycles through debug -> info -> warn -> error
func cycleLogLevel(appLog *logger.SlogLogger) {
	next := map[string]string{
		"DEBUG": "info",
		"INFO":  "warn",
		"WARN":  "error",
		"ERROR": "debug",
	}[appLog.GetLevel().String()]
	if next == "" {
		next = "info"
	}

	appLog.SetLevel(logger.ParseLevel(next))
	fmt.Printf("%sLog level: %s%s%s\n", green, yellow, next, reset)
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp() {
	fmt.Printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	fmt.Printf("    %sa%s      - Open admin page in browser\n", cyan, reset)
	fmt.Printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Printf("    %sl%s      - Cycle log level (debug → info → warn → error)\n", cyan, reset)
	fmt.Printf("    %sq%s      - Quit server\n", cyan, reset)
	fmt.Printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

func main() {
	os.Exit(run())
}

// run starts the server and returns the process exit code
func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Print("Failed to load configuration: ", err)
		return 1
	}

	port := flag.Int("port", cfg.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	adminUser := flag.String("adminuser", cfg.AdminUsername, "Username of the first admin account")
	adminPw := flag.String("adminpw", cfg.AdminPassword, "Password of the first admin account (generated if not set)")
	baseURL := flag.String("baseurl", cfg.BaseURL, "Public URL encoded in match QR codes")
	logLevel := flag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	logFormat := flag.String("logformat", cfg.LogFormat, "Log format (text, json)")
	noKeyboard := flag.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `DiscScore - Live Frisbee Tournament Scoring

Usage:
  discscore [options]

Options:
  -port int        HTTP server port (default 8081, env DISCSCORE_PORT)
  -db string       SQLite database path (default "frisbee.db", env DISCSCORE_DB)
  -adminuser str   First admin username (default "admin", env DISCSCORE_ADMIN_USER)
  -adminpw str     First admin password, generated if not set (env DISCSCORE_ADMIN_PASSWORD)
  -baseurl str     Public URL for QR codes, detected if not set (env DISCSCORE_BASE_URL)
  -loglevel str    Log level: debug, info, warn, error (default "info", env LOG_LEVEL)
  -logformat str   Log format: text, json (default "text", env LOG_FORMAT)
  -nokeyboard      Disable keyboard shortcuts
  -version         Show version and exit
  -help            Show this help message

Settings are also read from a .env file in the working directory.

Keyboard Shortcuts (when enabled):
  a                Open admin page in browser
  h                Toggle HTTP request logging
  l                Cycle log level (debug → info → warn → error)
  q                Quit server
  ?                Show keyboard help

Examples:
  discscore                          # Run on port 8081 with frisbee.db
  discscore -port 8080               # Run on port 8080
  discscore -db /data/tourney.db     # Use custom database path
  discscore -adminpw secret123       # Set the first admin password
  discscore -logformat json          # Structured logs for a log shipper

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("discscore %s\n", version)
		return 0
	}

	showBanner()

	appLog := logger.NewWithOptions(logger.Options{
		Level:  logger.ParseLevel(*logLevel),
		Format: *logFormat,
	})

	a, err := app.New(appLog, app.Options{
		DBPath:      *dbPath,
		BaseURL:     *baseURL,
		CORSOrigins: cfg.CORSOrigins,
	}, web.GetTemplatesFS(), web.GetStaticFS())
	if err != nil {
		log.Print("Failed to initialize application: ", err)
		return 1
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	password, err := a.EnsureAdmin(ctx, *adminUser, *adminPw)
	if err != nil {
		appLog.Error("Failed to create admin account", "error", err)
		return 1
	}
	if password != "" && *adminPw == "" {
		appLog.Info("Admin account created", "username", *adminUser, "password", password)
	}

	if !*noKeyboard {
		printKeyboardHelp()
		adminURL := fmt.Sprintf("http://localhost:%d/admin", *port)
		restore := listenForKeyboard(newShortcuts(adminURL, appLog, stop))
		defer restore()
	} else {
		fmt.Printf("\n%sKeyboard shortcuts disabled (use -nokeyboard=false to enable)%s\n\n", yellow, reset)
	}

	if err := a.Run(ctx, fmt.Sprintf(":%d", *port)); err != nil {
		appLog.Error("Server error", "error", err)
		return 1
	}
	return 0
}
