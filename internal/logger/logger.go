// Package logger builds the zerolog logger shared by both app modes. Logs always go to stderr-like writers, stdout belongs to search output.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// LevelFor - уровень логирования по режиму запуска и флагу verbose
func LevelFor(serve, verbose bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case serve:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}
