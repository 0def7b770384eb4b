package logging

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

// Log is the package-wide structured logger, writing human-readable
// console output with caller information attached.
var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// Named returns a child logger tagged with component, so log lines from
// the planner, the agent, the sensor driver, etc. can be told apart.
func Named(component string) zerolog.Logger {
	return Log.With().Str("component", component).Logger()
}
