package main

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds a console logger at the named level. Unknown levels fall
// back to info.
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Str("tool", "gnpthreshold").Logger()
}
