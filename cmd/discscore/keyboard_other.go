//go:build !linux && !darwin && !windows

package main

// listenForKeyboard is a no-op where raw terminal input is unsupported
func listenForKeyboard(s *shortcuts) (restore func()) {
	return func() {}
}
