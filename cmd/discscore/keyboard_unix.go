//go:build linux || darwin

package main

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// listenForKeyboard switches stdin to unbuffered, unechoed input and handles
// key presses in the background. The returned func restores the terminal.
func listenForKeyboard(s *shortcuts) (restore func()) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}

	oldState, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return func() {}
	}

	// Keep OPOST so log lines still end with a carriage return
	newState := *oldState
	newState.Lflag &^= unix.ICANON | unix.ECHO
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &newState); err != nil {
		return func() {}
	}

	restore = func() {
		unix.IoctlSetTermios(fd, ioctlSetTermios, oldState)
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 1 && s.handle(buf[0]) {
				return
			}
		}
	}()
	return restore
}
