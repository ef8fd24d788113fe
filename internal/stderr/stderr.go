//go:build !windows

// Package stderr redirects file descriptor 2 into the log so that stray
// writes (runtime warnings, cgo-free drivers that still print) cannot
// corrupt the alt-screen layout.
package stderr

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
	"sync"
	"syscall"
)

var (
	mu         sync.Mutex
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins forwarding stderr lines to logger at warn level.
// Must be called early in main(), before the program starts.
// Returns an error if capture cannot be set up; the program can continue
// without it.
func Start(logger *slog.Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go forward(pipeRead, logger, done)

	return nil
}

func forward(r *os.File, logger *slog.Logger, done chan<- struct{}) {
	defer close(done)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && logger != nil {
			logger.Warn("stderr", "line", line)
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible after the UI exits.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd > 0 {
		_, _ = syscall.Write(fd, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and waits for buffered lines to be
// logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()

	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = 0

	pipeWrite.Close()
	<-done
	pipeRead.Close()

	started = false
}
