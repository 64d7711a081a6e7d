package utils

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PrintLogInfo records the outcome of a handler call. email may be nil for
// requests that failed before the body was parsed.
func PrintLogInfo(email *string, statusCode int, functionName string) {
	var evt *zerolog.Event
	switch {
	case statusCode >= 500:
		evt = log.Error()
	case statusCode >= 400:
		evt = log.Warn()
	default:
		evt = log.Info()
	}

	user := "unknown"
	if email != nil {
		user = *email
	}

	evt.Int("status", statusCode).Str("function", functionName).Str("user", user).Send()
}
