package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Commander starts an external program without waiting for it to finish
type Commander interface {
	Start(name string, args ...string) error
}

// RealCommander runs commands with os/exec
type RealCommander struct{}

// Start launches the command and reaps it in the background
func (RealCommander) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}

// Opener opens URLs with the desktop's default handler
type Opener struct {
	Commander Commander
	GOOS      string
}

// Open opens rawURL in the default browser of the running platform
func Open(rawURL string) error {
	return Opener{Commander: RealCommander{}, GOOS: runtime.GOOS}.Open(rawURL)
}

// Open launches the platform's URL handler. Only http and https URLs are
// accepted since the handler would happily run file: or custom schemes.
func (o Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open %q: scheme must be http or https", rawURL)
	}

	name, args, err := command(o.GOOS, u.String())
	if err != nil {
		return err
	}
	return o.Commander.Start(name, args...)
}

func command(goos, target string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
