// Copyright (c) 2025 The Zamam Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the process-wide leveled logger.
//
// The TUI owns the terminal, so interactive runs log to ~/.zamam/zamam.log;
// one-shot CLI commands log to stderr. Messages are short event names with
// key/value pairs:
//
//	logging.Default().Info("CHAT_SEND", "turns", n, "model", m)
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// FileName is the log file created inside the Zamam home directory.
const FileName = "zamam.log"

var (
	mu      sync.RWMutex
	current = log.NewWithOptions(io.Discard, log.Options{})
)

// Options selects where and how verbosely the logger writes.
type Options struct {
	// Verbose enables debug level.
	Verbose bool
	// Dir, when set, sends output to Dir/zamam.log instead of Writer.
	Dir string
	// Writer is used when Dir is empty. Defaults to stderr.
	Writer io.Writer
}

// New builds a logger writing to w.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "zamam",
		Level:           level,
	})
}

// Setup installs the process logger described by opts. The returned closer
// releases the log file, if one was opened.
func Setup(opts Options) (*log.Logger, func() error, error) {
	closer := func() error { return nil }
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	if opts.Dir != "" {
		f, err := OpenFile(opts.Dir)
		if err != nil {
			return nil, closer, err
		}
		w = f
		closer = f.Close
	}

	l := New(w, opts.Verbose)
	SetDefault(l)
	return l, closer, nil
}

// OpenFile opens dir/zamam.log for appending, creating dir if needed.
func OpenFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Default returns the process logger. It discards output until Setup or
// SetDefault is called.
func Default() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetDefault replaces the process logger.
func SetDefault(l *log.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	current = l
	mu.Unlock()
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Or returns l, or the process logger when l is nil.
func Or(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return Default()
}
