package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures zerolog for text-based output with no coloring.
func InitLogger() {
	InitLoggerTo(os.Stderr)
}

// InitLoggerTo is InitLogger with an explicit writer.
func InitLoggerTo(w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	})
}

// SetLogLevel sets the global log level for zerolog.
func SetLogLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// ParseLogLevel maps "debug", "info", "warn" and "error" to zerolog levels; anything else is info.
func ParseLogLevel(s string) zerolog.Level {
	switch s {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
