package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var ErrLogFormat = errors.New(f("log format unknown"))

// newLogger builds the root logger. Verbose selects debug level, which
// includes the instruction trace.
func newLogger(format string, verbose bool, out io.Writer) (logger zerolog.Logger, err error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	switch format {
	case "console":
		logger = zerolog.New(newConsoleWriter(out)).Level(level).
			With().Timestamp().Logger()
	case "json":
		logger = zerolog.New(out).Level(level).
			With().Timestamp().Logger()
	default:
		err = fmt.Errorf("%w: %q", ErrLogFormat, format)
	}
	return
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	return cw
}
