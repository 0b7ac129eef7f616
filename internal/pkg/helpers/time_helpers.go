package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string such as "90m", falling back to def
// (with a warning) when the string is empty or malformed.
func ParseDuration(durationStr string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(durationStr)
	if err != nil || d <= 0 {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
