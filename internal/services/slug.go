package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	parenthesizedPattern = regexp.MustCompile(`\([^)]*\)`)
	nonSlugRunPattern    = regexp.MustCompile(`[^a-z0-9]+`)
)

// SlugifyName derives the detail page key from a disorder name. Accented
// Latin letters fold to their base letter before non-alphanumerics collapse.
func SlugifyName(name string) string {
	slug := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, norm.NFKD.String(name))
	slug = strings.ToLower(slug)
	slug = parenthesizedPattern.ReplaceAllString(slug, "")
	slug = nonSlugRunPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
