// Package translate localizes the user visible messages of the A256 tools.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("a256: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// Printer returns the message printer for the detected locale.
func Printer() *message.Printer {
	printerOnce.Do(load)
	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
