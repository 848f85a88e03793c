// Package logging builds the zerolog logger shared by the CLI and the TUI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
type Options struct {
	Level string // debug | info | warn | error
	// File, when set, receives JSON lines through a rotating writer.
	File string
	// Console, when non-nil, receives warnings and above in console format.
	// Leave nil while the TUI owns the terminal.
	Console io.Writer
}

// New returns the logger and a closer for the file writer, if any.
func New(opts Options) (zerolog.Logger, io.Closer) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}

	if strings.TrimSpace(opts.File) != "" {
		w := &lj.Logger{Filename: opts.File, MaxSize: 5, MaxBackups: 3, MaxAge: 28}
		writers = append(writers, w)
		closer = w
	}
	if opts.Console != nil {
		cw := zerolog.ConsoleWriter{Out: opts.Console, NoColor: !isTerminal(opts.Console)}
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: cw},
			Level:  zerolog.WarnLevel,
		})
	}
	if len(writers) == 0 {
		return zerolog.Nop(), closer
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Str("app", "todolist").
		Logger()
	return logger, closer
}

// ParseLevel maps a config string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
