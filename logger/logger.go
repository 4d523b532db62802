// Package logger wraps logrus with leveled, context-aware logging.
// Entries automatically carry the request trace id when one is present
// in the context.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ncobase/todosheet/config"
)

// Logger is the application logger.
type Logger struct {
	*logrus.Logger
	logFile *os.File
}

// New builds a logger from config. The returned cleanup closes any open
// log file and must be called on shutdown.
func New(c *config.Logger) (*Logger, func(), error) {
	l := &Logger{Logger: logrus.New()}
	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	switch c.Output {
	case "stderr":
		l.SetOutput(os.Stderr)
	case "file":
		if c.OutputFile != "" {
			if err := l.openLogFile(c.OutputFile); err != nil {
				return nil, nil, err
			}
		}
	default:
		l.SetOutput(os.Stdout)
	}

	return l, func() {
		if l.logFile != nil {
			_ = l.logFile.Close()
		}
	}, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetOutput(io.Discard)
	return l
}

// openLogFile opens a date-suffixed log file for appending.
func (l *Logger) openLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	name := fmt.Sprintf("%s.%s.log", strings.TrimSuffix(path, ".log"), time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(name, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.logFile = f
	l.SetOutput(f)
	return nil
}

// entryFromContext creates a log entry tagged with context fields.
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if traceID := GetTraceID(ctx); traceID != "" {
		fields[traceKey] = traceID
	}
	return l.WithFields(fields)
}

// pairsToFields folds alternating key/value arguments into logrus
// fields. Keys that are not strings are skipped.
func pairsToFields(kvs []any) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			continue
		}
		fields[key] = kvs[i+1]
	}
	return fields
}

func (l *Logger) log(ctx context.Context, level logrus.Level, msg string, kvs ...any) {
	l.entryFromContext(ctx).WithFields(pairsToFields(kvs)).Log(level, msg)
}

// Debug logs msg at debug level with optional key/value fields.
func (l *Logger) Debug(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.DebugLevel, msg, kvs...)
}

// Info logs msg at info level with optional key/value fields.
func (l *Logger) Info(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.InfoLevel, msg, kvs...)
}

// Warn logs msg at warn level with optional key/value fields.
func (l *Logger) Warn(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.WarnLevel, msg, kvs...)
}

// Error logs msg at error level with optional key/value fields.
func (l *Logger) Error(ctx context.Context, msg string, kvs ...any) {
	l.log(ctx, logrus.ErrorLevel, msg, kvs...)
}
