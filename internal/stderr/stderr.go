//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe for the lifetime
// of the program. The speaker's native audio layer (ALSA on Linux) prints
// warnings straight to fd 2, underneath os.Stderr, and anything written
// there while the alternate screen is active tears the layout. Captured
// lines are surfaced on a channel so the UI can show them in its status
// line instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages delivers captured stderr lines, one per send. The channel is
// never closed while capture is active; when it is full new lines are
// dropped rather than blocking the reader goroutine.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start swaps fd 2 for a pipe and begins draining it. Call it before the
// audio surface initializes, since the native layer caches the descriptor.
// On error the process keeps its real stderr and runs without capture.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	// Keep a handle on the real stderr for WriteOriginal and Stop.
	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go func() {
		scanner := bufio.NewScanner(pipeRead)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case Messages <- line:
			default:
			}
		}
	}()

	return nil
}

// WriteOriginal bypasses the capture and writes to the saved stderr, for
// messages that must reach the terminal even while capture is active.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
	}
}

// Stop puts the saved descriptor back on fd 2 and tears down the pipe.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
