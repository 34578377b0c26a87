package main

import (
	"fmt"
	"strings"

	"github.com/abrezinsky/discscore/internal/browser"
	"github.com/abrezinsky/discscore/internal/logger"
)

// shortcuts performs the action bound to a single key press
type shortcuts struct {
	adminURL string
	log      *logger.SlogLogger
	quit     func()
	open     func(url string) error
}

func newShortcuts(adminURL string, appLog *logger.SlogLogger, quit func()) *shortcuts {
	return &shortcuts{adminURL: adminURL, log: appLog, quit: quit, open: browser.Open}
}

// handle runs the action for key and reports whether the listener should stop
func (s *shortcuts) handle(key byte) bool {
	switch strings.ToLower(string(key)) {
	case "a":
		fmt.Printf("%sOpening admin page in browser...%s\n", cyan, reset)
		if err := s.open(s.adminURL); err != nil {
			fmt.Printf("%sError opening browser: %v%s\n", red, err, reset)
		}
	case "h":
		if s.log.IsHTTPLoggingEnabled() {
			s.log.DisableHTTPLogging()
			fmt.Printf("%sHTTP logging disabled%s\n", yellow, reset)
		} else {
			s.log.EnableHTTPLogging()
			fmt.Printf("%sHTTP logging enabled%s\n", green, reset)
		}
	case "l":
		cycleLogLevel(s.log)
	case "?":
		printKeyboardHelp()
	case "q", "\x03":
		fmt.Printf("%sShutting down server...%s\n", yellow, reset)
		s.quit()
		return true
	}
	return false
}
