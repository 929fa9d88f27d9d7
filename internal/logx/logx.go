// Package logx configures zerolog for the travelopts binaries.
package logx

import (
	"io"
	"strings"

	"github.com/katalvlaran/travelopts/options"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup builds the global logger writing to w, sets the global level and
// routes options package diagnostics through it. Unknown levels fall back
// to info; format "pretty" selects the console writer, anything else JSON.
func Setup(level, format string, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(ParseLevel(level))

	if strings.EqualFold(format, "pretty") {
		w = zerolog.ConsoleWriter{Out: w}
	}
	logger := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = logger
	options.SetLogger(logger.With().Str("pkg", "options").Logger())

	return logger
}

// ParseLevel maps debug|info|warn|error|fatal|panic to a zerolog level.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
