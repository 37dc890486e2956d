// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user facing messages for the host locale.
package translate

import (
	"github.com/charmbracelet/log"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host reports no locale.
const DEFAULT_LOCALE = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Warn("translate: locale", "err", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the message printer from a list of preferred
// locales, most preferred first.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
