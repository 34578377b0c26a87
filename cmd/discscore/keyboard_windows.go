package main

import (
	"os"

	"golang.org/x/term"
)

// listenForKeyboard reads stdin a byte at a time. Console input stays line
// buffered on Windows, so keys take effect after Enter.
func listenForKeyboard(s *shortcuts) (restore func()) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return func() {}
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
	return func() {}
}
