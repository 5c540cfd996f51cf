// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user visible messages in the caller's language.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ENV_LANG overrides the detected system locale when set.
const ENV_LANG = "STACKASM_LANG"

var (
	tag     language.Tag
	printer *message.Printer
)

func init() {
	SetLanguage(detect()...)
}

// detect returns the preferred locales, most preferred first.
func detect() (locales []string) {
	if lang := os.Getenv(ENV_LANG); len(lang) != 0 {
		return []string{lang}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("stackasm: locale: %v", err)
	}

	return
}

// SetLanguage selects the message language from a list of locale names.
// An empty list selects en-US.
func SetLanguage(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language returns the currently selected message language.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
