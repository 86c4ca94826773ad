// Package logging builds the leveled logger shared by the CLI and the HTTP
// server. It wraps the gommon logger Echo uses internally so application
// and framework messages land in the same stream with the same format.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/log"

	"evalgo.org/webapp/internal/config"
)

const textHeader = "${time_rfc3339} ${level} ${prefix} ${short_file}:${line}"

// New returns a logger configured from cfg. A nil out writes to stdout.
func New(cfg config.LoggingConfig, out io.Writer) *log.Logger {
	if out == nil {
		out = os.Stdout
	}

	l := log.New("webapp")
	l.SetOutput(out)
	l.SetLevel(ParseLevel(cfg.Level))

	// the default gommon header is already JSON
	if cfg.Format == "text" {
		l.SetHeader(textHeader)
	}

	return l
}

// ParseLevel maps a config level name to a gommon level. Unknown names
// fall back to INFO.
func ParseLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
