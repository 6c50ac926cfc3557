// Package logging provides the leveled console logger used by every stage
// of a run, with an optional JSON file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/backmassage/tifconvert/internal/config"
	"github.com/backmassage/tifconvert/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// Console lines are human-oriented; the file sink receives one JSON object
// per line.
type Logger struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	file   *os.File
	sink   *zerolog.Logger
}

// NewLogger configures terminal colors from cfg and optionally opens
// cfg.LogFile for appending. Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{stdout: os.Stdout, stderr: os.Stderr}
	if cfg.LogFile == "" {
		return l, nil
	}

	dir := filepath.Dir(cfg.LogFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	zctx := zerolog.New(f).With().Timestamp()
	if cfg.RunID != "" {
		zctx = zctx.Str("run_id", cfg.RunID)
	}
	sink := zctx.Logger()
	l.file = f
	l.sink = &sink
	return l, nil
}

// SetOutput redirects console output. Used by tests to capture lines.
func (l *Logger) SetOutput(stdout, stderr io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stdout = stdout
	l.stderr = stderr
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.sink = nil
		return err
	}
	return nil
}

var sinkLevels = map[string]zerolog.Level{
	"INFO":    zerolog.InfoLevel,
	"SUCCESS": zerolog.InfoLevel,
	"WARN":    zerolog.WarnLevel,
	"ERROR":   zerolog.ErrorLevel,
	"DEBUG":   zerolog.DebugLevel,
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.stdout
	if level == "ERROR" {
		out = l.stderr
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, ts+" ["+level+"] "+text+"\n")
	}
	if l.sink != nil && text != "" {
		l.sink.WithLevel(sinkLevels[level]).Str("tag", level).Msg(text)
	}
}

// Blank writes an empty line to the console only, separating per-file blocks.
func (l *Logger) Blank() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.stdout, "\n")
}

// Print writes pre-rendered text (tables, banners) to the console verbatim.
func (l *Logger) Print(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.stdout, text)
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
