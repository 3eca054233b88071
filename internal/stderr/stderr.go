//go:build !windows

// Package stderr captures output that the audio backend's C libraries (ALSA,
// minimp3) write straight to file descriptor 2, where it would corrupt the
// TUI, and forwards it to the log.
package stderr

import (
	"os"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

var (
	mu         sync.Mutex
	origStderr = -1
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
)

// Start redirects fd 2 into a pipe whose lines are logged at warn level.
// Call it before the audio device is opened. When it fails the program can
// carry on; the output just reaches the terminal.
func Start(logger zerolog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	origStderr, pipeRead, pipeWrite = orig, r, w
	done = make(chan struct{})
	go func(done chan<- struct{}) {
		defer close(done)
		forward(r, logger)
	}(done)
	return nil
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func WriteOriginal(msg string) {
	mu.Lock()
	fd := origStderr
	mu.Unlock()
	if fd < 0 {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(fd, []byte(msg))
}

// Stop restores the original stderr and waits for the forwarder to drain.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if pipeRead == nil {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = -1

	// fd 2 no longer refers to the pipe, so closing our end delivers EOF.
	pipeWrite.Close()
	<-done
	pipeRead.Close()
	pipeRead, pipeWrite = nil, nil
}
