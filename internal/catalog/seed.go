package catalog

import (
	"embed"
	"fmt"

	"golang.org/x/text/language"
)

//go:embed seed/*.yaml
var seedFS embed.FS

// seedLocales lists the embedded course translations. The first entry is the
// fallback.
var seedLocales = []language.Tag{
	language.English,
	language.Spanish,
}

var seedMatcher = language.NewMatcher(seedLocales)

// Seed returns the built-in course in the translation that best matches tag,
// together with the tag actually served.
func Seed(tag language.Tag) (*Catalog, language.Tag, error) {
	_, idx, _ := seedMatcher.Match(tag)
	served := seedLocales[idx]

	base, _ := served.Base()
	data, err := seedFS.ReadFile(fmt.Sprintf("seed/course.%s.yaml", base.String()))
	if err != nil {
		return nil, served, fmt.Errorf("read seed course: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, served, fmt.Errorf("seed course %s: %w", served, err)
	}
	return c, served, nil
}

// ParseLocale parses a BCP 47 language tag such as "en" or "es-MX".
// An empty string selects English.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag, nil
}

// SeedLocales returns the locales the built-in course is available in.
func SeedLocales() []language.Tag {
	out := make([]language.Tag, len(seedLocales))
	copy(out, seedLocales)
	return out
}
