// Package language resolves user-supplied language names into the forms the
// translation upstreams expect.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// displayNames maps lowercase names to the exact labels the translation loop
// expects. Names missing here are sent as given.
var displayNames = map[string]string{
	"hindi":    "Hindi",
	"tamil":    "Tamil",
	"bengali":  "Bengali",
	"telugu":   "Telugu",
	"marathi":  "Marathi",
	"gujarati": "Gujarati",
}

var knownTags = []language.Tag{
	language.English, language.French, language.Spanish, language.German,
	language.Italian, language.Portuguese, language.Russian, language.Chinese,
	language.Japanese, language.Korean, language.Arabic, language.Hindi,
	language.Tamil, language.Bengali, language.Telugu, language.Marathi,
	language.Gujarati, language.Kannada, language.Malayalam, language.Punjabi,
	language.Urdu, language.Dutch, language.Polish, language.Turkish,
	language.Ukrainian, language.Swedish, language.Greek, language.Hebrew,
	language.Thai, language.Vietnamese, language.Indonesian, language.Nepali,
}

var (
	lower  = cases.Lower(language.Und)
	byName = indexNames(knownTags)
)

func indexNames(tags []language.Tag) map[string]language.Tag {
	namer := display.English.Languages()
	index := make(map[string]language.Tag, len(tags))
	for _, tag := range tags {
		index[lower.String(namer.Name(tag))] = tag
	}
	return index
}

// Normalize trims and lowercases a language name.
func Normalize(name string) string {
	return lower.String(strings.TrimSpace(name))
}

// Resolve returns the label to send upstream for name: the mapped display
// form when one exists, otherwise the normalized name itself.
func Resolve(name string) string {
	normalized := Normalize(name)
	if label, ok := displayNames[normalized]; ok {
		return label
	}
	return normalized
}

// Tag maps an English language name ("hindi") or a BCP 47 code ("hi") to a
// language tag.
func Tag(name string) (language.Tag, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return language.Und, fmt.Errorf("empty language name")
	}
	if tag, ok := byName[normalized]; ok {
		return tag, nil
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, fmt.Errorf("unknown language %q: %w", name, err)
	}
	return tag, nil
}
