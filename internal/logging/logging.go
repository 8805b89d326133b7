// Package logging provides the shared diagnostic logger.
//
// The traversal code reports every skipped entry here rather than failing;
// output is suppressed below warn level unless debug logging is enabled
// via SetDebug or the DULS_DEBUG environment variable.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var std = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func init() {
	std.SetLevel(log.WarnLevel)
	if os.Getenv("DULS_DEBUG") != "" {
		std.SetLevel(log.DebugLevel)
	}
}

// SetDebug toggles debug-level output at runtime.
func SetDebug(on bool) {
	if on {
		std.SetLevel(log.DebugLevel)
	} else {
		std.SetLevel(log.WarnLevel)
	}
}

func Debugf(format string, args ...any) {
	std.Debugf(format, args...)
}

func Warnf(format string, args ...any) {
	std.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	std.Errorf(format, args...)
}
