package lazyconf

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EnvName derives an environment variable name from a config key:
// EnvName("APP", "Superman.power") is "APP_SUPERMAN_POWER". Letters are
// upper-cased and any other non-alphanumeric rune becomes '_'.
func EnvName(prefix, key string) string {
	name := key
	if prefix != "" {
		name = prefix + "_" + key
	}

	// Casers hold state; one per call.
	name = cases.Upper(language.Und).String(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}
