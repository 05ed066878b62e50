//go:build windows

// Package stderr is inert on Windows. WASAPI output goes through the audio
// session API rather than fd 2, so there is no native noise to intercept.
package stderr

import "os"

// Messages matches the Unix build's channel so callers can range or select
// on it unconditionally. Nothing is ever sent on Windows.
var Messages = make(chan string)

// Start reports success without redirecting anything.
func Start() error {
	return nil
}

// WriteOriginal writes straight to stderr, which was never redirected.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op.
func Stop() {}
