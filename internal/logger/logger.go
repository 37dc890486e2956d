// Package logger configures the process wide logger.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init initializes the logger writing to stderr.
func Init(verbose, noColor bool) {
	InitWriter(os.Stderr, verbose, noColor)
}

// InitWriter initializes the logger writing to w. Verbose enables debug
// logging, otherwise only warnings and errors are shown.
func InitWriter(w io.Writer, verbose, noColor bool) {
	log.SetDefault(log.NewWithOptions(w,
		log.Options{
			ReportCaller:    verbose,
			ReportTimestamp: false,
			Prefix:          "lmc",
		}))

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
