// Package text normalizes free-form Spanish text into upper-case ASCII.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	dErrors "github.com/NicoBar2/scrapingdarwin/pkg/domain-errors"
)

var errEmpty = dErrors.New(dErrors.CodeValidation, "El texto no puede estar vacío")

// Normalize trims s, decomposes it (NFD), drops every non-ASCII rune so
// accents and tildes disappear, upper-cases the result and collapses runs of
// whitespace into single spaces.
func Normalize(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errEmpty
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	ascii, _, err := transform.String(t, trimmed)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to normalize text")
	}

	return strings.Join(strings.Fields(strings.ToUpper(ascii)), " "), nil
}

// Clean removes every character that is neither an ASCII letter, an ASCII
// digit nor whitespace, then upper-cases what remains. Whitespace is kept as is.
func Clean(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errEmpty
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, s)
	return strings.ToUpper(cleaned), nil
}
