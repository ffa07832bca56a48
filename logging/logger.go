package logging

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

const DEFAULT_LEVEL = "warn"

// NewLogger creates an hclog logger with the standard settings.
// AIDYNEDIT_JSON_LOG=1 switches to JSON lines.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: os.Getenv("AIDYNEDIT_JSON_LOG") == "1",
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the level from the environment, or "warn".
func GetLogLevel() string {
	level := os.Getenv("AIDYNEDIT_LOG_LEVEL")
	if level == "" {
		level = DEFAULT_LEVEL
	}
	return level
}
