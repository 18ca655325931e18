// Package translate formats user visible messages in the user's language.
//
// Message keys are en-US format strings. Catalogs for other languages are
// registered in catalog.go; keys without a translation print as-is.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supported languages, en-US first so it is the fallback match.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
	language.French,
}

var printer *message.Printer

func init() {
	for tag, entries := range catalog {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				log.Printf("chip8: catalog %v: %v", tag, err)
			}
		}
	}

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("chip8: locale: %v", err)
	}

	printer = message.NewPrinter(Match(locales...))
}

// Match returns the supported language closest to the given locale names.
func Match(locales ...string) (tag language.Tag) {
	var tags []language.Tag
	for _, name := range locales {
		parsed, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, parsed)
	}

	if len(tags) == 0 {
		return supported[0]
	}

	_, index, _ := language.NewMatcher(supported).Match(tags...)
	return supported[index]
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// In formats a key for a specific language, regardless of the user's locale.
func In(tag language.Tag, key message.Reference, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}
