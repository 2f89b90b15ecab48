package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Setup builds the application logger. Output goes to a colored console on stdout and, in
// JSON, to every extra writer (log files, collectors).
//
// Parameters:
//   - level: minimum level name, e.g. "debug"
//   - writers: additional JSON sinks
//
// Returns:
//   - zerolog.Logger: the configured logger
func Setup(level string, writers ...io.Writer) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	outputs := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		},
	}
	for _, w := range writers {
		if w != nil {
			outputs = append(outputs, w)
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
	logger.Info().Str("loglevel", logger.GetLevel().String()).Msg("logging set up")
	return logger
}

// Sampled returns a logger for per-tick messages: bursts of 5 per 10 seconds, then 1 in 100.
func Sampled(logger zerolog.Logger) zerolog.Logger {
	return logger.With().Bool("sampled", true).Logger().Sample(&zerolog.BurstSampler{
		Burst:       5,
		Period:      10 * time.Second,
		NextSampler: &zerolog.BasicSampler{N: 100},
	})
}
