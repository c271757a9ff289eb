package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const logFile = "flappy.log"

// setupLogging routes the standard logger. The terminal frontend owns the
// tty, so it logs to dir/flappy.log with debug set and nowhere otherwise.
// The desktop frontend logs to stderr. The returned closer releases the
// log file, if any.
func setupLogging(frontend string, debug bool, dir string) (io.Closer, error) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}
	if frontend != frontendTerminal {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}
	if !debug {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
