package observability

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "SNMPCTL_LOG_LEVEL"
	EnvLogTimestamp = "SNMPCTL_LOG_TIMESTAMP"
)

// InitLogger configures the global zerolog logger for one binary and
// returns it. SNMPCTL_LOG_LEVEL (trace..error, off) and
// SNMPCTL_LOG_TIMESTAMP override the defaults.
func InitLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	ctx := zerolog.New(output).With().Str("app", app)
	if withTimestamp() {
		ctx = ctx.Timestamp()
	}
	logger := ctx.Logger().Level(logLevel())
	log.Logger = logger
	return logger
}

func logLevel() zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func withTimestamp() bool {
	raw := strings.TrimSpace(os.Getenv(EnvLogTimestamp))
	if raw == "" {
		return true
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return enabled
}
