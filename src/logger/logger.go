// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// Output is gated by a verbosity level mirroring the tool's -v/-q flags:
// -1 silences everything, 0 prints regular messages only, and each further
// level unlocks Debugf calls made with that level or lower.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// Debugf prints a message only when the verbosity is at least level.
	Debugf(level int, format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
	// SetVerbosity sets the verbosity level.
	SetVerbosity(level int)
}

// base carries the shared zerolog plumbing of both implementations.
type base struct {
	mu        sync.RWMutex
	zl        zerolog.Logger
	verbosity int
	wrap      func(io.Writer) io.Writer
}

func newBase(w io.Writer, wrap func(io.Writer) io.Writer) *base {
	b := &base{wrap: wrap}
	b.SetOutput(w)
	return b
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (b *base) Printf(format string, v ...any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.verbosity < 0 {
		return
	}
	b.zl.Info().Msgf(format, v...)
}

// Println prints a log message with operands separated by spaces.
func (b *base) Println(v ...any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.verbosity < 0 {
		return
	}
	b.zl.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Debugf prints a message when the verbosity is at least level.
func (b *base) Debugf(level int, format string, v ...any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.verbosity < 0 || b.verbosity < level {
		return
	}
	b.zl.Debug().Msgf(format, v...)
}

// SetOutput sets the output destination. A nil writer discards output.
func (b *base) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.zl = zerolog.New(b.wrap(zerolog.SyncWriter(w))).Level(zerolog.DebugLevel)
}

// SetVerbosity sets the verbosity level.
func (b *base) SetVerbosity(level int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.verbosity = level
}

// Verbosity returns the current verbosity level.
func (b *base) Verbosity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.verbosity
}

// CLILogger implements Logger with plain, human-readable lines.
// It's designed for command-line interface output: no timestamps, no levels,
// no colour.
//
// CLILogger is safe for concurrent use by multiple goroutines.
type CLILogger struct{ *base }

// NewCLILogger creates a new CLI logger writing to stdout at verbosity 0.
func NewCLILogger() *CLILogger {
	return &CLILogger{base: newBase(os.Stdout, consoleWriter)}
}

func consoleWriter(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
	}
}

// JSONLogger implements Logger with one JSON object per line, carrying
// "level" and "message" fields. It suits wrappers that drive the tool from
// scripts and parse its output.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct{ *base }

// NewJSONLogger creates a JSON logger writing to w. A nil writer discards
// output.
func NewJSONLogger(w io.Writer) *JSONLogger {
	return &JSONLogger{base: newBase(w, func(w io.Writer) io.Writer { return w })}
}
