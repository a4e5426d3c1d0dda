package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// RotationConfig describes the optional rotating file sink.
type RotationConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a new zerolog logger writing JSON to stderr.
// Returns an error if the log level string cannot be parsed.
func New(level string) (Logger, error) {
	return newLogger(level, os.Stderr)
}

// NewWithRotation creates a logger that writes to stderr and to a lumberjack-rotated file.
func NewWithRotation(level string, rotation RotationConfig) (Logger, error) {
	fileWriter := &lumberjack.Logger{
		Filename:   rotation.Path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}
	return newLogger(level, zerolog.MultiLevelWriter(os.Stderr, fileWriter))
}

func newLogger(level string, w io.Writer) (Logger, error) {
	zerologLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(w).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
