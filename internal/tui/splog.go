// Package tui provides terminal output, prompts and styling utilities.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// createLumberjackLogger creates a rotating file logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if maxSizeStr := os.Getenv("RELGATE_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("RELGATE_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("RELGATE_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}

// Splog provides structured console output with optional rotating file logging
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
}

// NewSplog creates a new splog instance. Debug messages are enabled when the
// DEBUG environment variable is set; file logging when RELGATE_LOG_FILE is set.
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig(os.Getenv("RELGATE_LOG_FILE"))
	return splog
}

// NewSplogWithConfig creates a new splog instance with optional file logging
func NewSplogWithConfig(logFilePath string) (*Splog, error) {
	splog := &Splog{writer: os.Stdout}

	consoleHandler := &simpleHandler{
		writer:    splog.writer,
		debugMode: os.Getenv("DEBUG") != "",
	}

	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		logDir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

func (s *Splog) logMessage(level slog.Level, msg string) {
	s.logger.Log(context.Background(), level, msg)
}

func (s *Splog) sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, s.sprintf(format, args...))
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, "⚠️  "+s.sprintf(format, args...))
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, "❌ "+s.sprintf(format, args...))
}

// Debug writes a debug message
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, s.sprintf(format, args...))
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, "💡 "+s.sprintf(format, args...))
}

// Newline writes a newline
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
