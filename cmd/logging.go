package cmd

import (
	"github.com/hpkotak/notify-claude/internal/log"
	"github.com/rs/zerolog"
)

func newLogger() zerolog.Logger {
	level := logLevelFlag
	if verboseFlag {
		level = "debug"
	}
	return log.New(ioErr, level)
}
