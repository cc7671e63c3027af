package system

import (
	"time"

	"github.com/rs/zerolog"
)

// frameLogger keeps per-tick warnings from flooding the log.
func frameLogger(log zerolog.Logger, system string) zerolog.Logger {
	return log.With().Str("system", system).Logger().
		Sample(&zerolog.BurstSampler{Burst: 4, Period: time.Second})
}
