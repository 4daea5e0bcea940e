package logging

import (
	"strings"

	"github.com/pkg/errors"
)

// LoggerType is a type of logger output.
// Possible types:
//   - LoggerConsole: Human readable lines, the zap development console encoder.
//   - LoggerJSON: One JSON object per line.
type LoggerType int

const (
	LoggerConsole LoggerType = iota
	LoggerJSON
)

func (t LoggerType) String() string {
	switch t {
	case LoggerConsole:
		return "console"
	case LoggerJSON:
		return "json"
	default:
		return "unknown"
	}
}

func (t LoggerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *LoggerType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "console", "pretty", "text":
		*t = LoggerConsole
	case "json":
		*t = LoggerJSON
	default:
		return errors.Errorf("unsupported logger type %q", string(text))
	}
	return nil
}
