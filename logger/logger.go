package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging surface used across the toolkit.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

var (
	output  io.Writer = os.Stderr
	console atomic.Bool
)

func init() {
	console.Store(strings.ToLower(os.Getenv("APP_ENV")) == "dev")
}

// formatWriter picks JSON or console output on every write, so loggers
// created before Configure follow the configured format.
type formatWriter struct {
	out io.Writer
	cw  zerolog.ConsoleWriter
}

func newFormatWriter(w io.Writer) *formatWriter {
	return &formatWriter{out: w, cw: zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}}
}

func (f *formatWriter) Write(p []byte) (int, error) {
	if console.Load() {
		return f.cw.Write(p)
	}
	return f.out.Write(p)
}

// New creates a logger tagged with the given component. Output is JSON unless
// APP_ENV=dev or Configure selected the console format.
func New(component string) Logger {
	return newWithWriter(output, component)
}

func newWithWriter(w io.Writer, component string) *ZerologLogger {
	z := zerolog.New(newFormatWriter(w)).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

// NewWithWriter creates a JSON logger writing to w. Mostly useful in tests.
func NewWithWriter(w io.Writer, component string) Logger {
	z := zerolog.New(w).With().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &ZerologLogger{log: zerolog.Nop()}
}

// Configure sets the global level and output format ("json" or "console").
func Configure(level, format string) error {
	if err := SetLevel(level); err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "", "json":
	case "console":
		console.Store(true)
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// SetLevel sets the global zerolog level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
