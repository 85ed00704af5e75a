// ABOUTME: Debug logging setup shared by all modes
// ABOUTME: Routes zerolog to a size-capped rotating file so the TUI keeps the terminal

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFilename = "ring-player.log"

// InitLogging configures the global logger. Output always goes to the log
// file rather than the terminal, which the TUI owns while running.
func InitLogging(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Logger = log.Output(&lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
	})
}

// debugf adapts zerolog to the printf-style logger the TUI expects
func debugf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}
